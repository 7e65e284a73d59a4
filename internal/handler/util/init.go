package util

import (
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/config"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/handler/recommendation"
	serv "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service/util"
	"github.com/labstack/echo"
)

func InitHandler(config *config.AppConfig, e *echo.Echo, servWrapper *serv.ServiceWrapper) {
	recommendation.InitRoute(e, servWrapper)
}
