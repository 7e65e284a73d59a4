package util

import (
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/config"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/repository"
	db "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/repository/postgres"
)

type RepoWrapper struct {
	ProductRepo     repository.ProductRepository
	ReservationRepo repository.ReservationRepository
	UserRepo        repository.UserRepository
	PreferenceRepo  repository.PreferenceRepository
}

func New(config *config.AppConfig) (repoWrapper *RepoWrapper, err error) {

	var dbConnection *db.RepoDatabase

	dbConnection, err = db.Init(config)
	if err != nil {
		return nil, err
	}

	repoWrapper = &RepoWrapper{
		ProductRepo:     dbConnection,
		ReservationRepo: dbConnection,
		UserRepo:        dbConnection,
		PreferenceRepo:  dbConnection,
	}

	return
}
