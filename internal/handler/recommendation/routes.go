package recommendation

import (
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service/util"
	"github.com/labstack/echo"
)

type ApiWrapper struct {
	RecommendationService service.RecommendationService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		RecommendationService: servWrapper.RecommendationService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/ai")
	group.POST("/recomendaciones", a.GenerateRecommendations)
	group.GET("/recomendaciones/:usuario_id/explicacion/:producto_id", a.ExplainRecommendation)
	group.GET("/productos-similares/:producto_id", a.SimilarProducts)
	group.POST("/preferencias/:usuario_id", a.SavePreferences)
	group.GET("/estadisticas/:usuario_id", a.UserStats)
}
