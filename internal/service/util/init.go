package util

import (
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/config"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/repository/util"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service/recommendation"
)

type ServiceWrapper struct {
	RecommendationService service.RecommendationService
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *ServiceWrapper {
	return &ServiceWrapper{
		RecommendationService: recommendation.New(config, repo),
	}
}
