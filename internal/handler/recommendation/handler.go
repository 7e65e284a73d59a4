package recommendation

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service"
	"github.com/labstack/echo"
)

func (a *ApiWrapper) GenerateRecommendations(c echo.Context) error {
	var req entity.RecommendationAPIRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "ID de usuario es requerido")
	}

	result, err := a.RecommendationService.RecommendForUser(req.UserID, req.Preferences)
	if err != nil {
		return serviceError(c, err, "Error al generar recomendaciones")
	}

	recs := make([]echo.Map, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recs = append(recs, echo.Map{
			"producto":             rec.Product,
			"puntuacion":           int(math.Round(rec.Score)),
			"razones":              rec.Reasons,
			"descuento_porcentaje": int(math.Round(rec.Product.DiscountPercent())),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Recomendaciones generadas exitosamente",
		"data": echo.Map{
			"usuario": echo.Map{
				"id":     result.User.ID,
				"nombre": result.User.Name,
			},
			"total_recomendaciones": len(recs),
			"recomendaciones":       recs,
		},
	})
}

func (a *ApiWrapper) ExplainRecommendation(c echo.Context) error {
	userID, err := parseID(c.Param("usuario_id"))
	if err != nil {
		return badRequest(c, "ID de usuario inválido")
	}
	productID, err := parseID(c.Param("producto_id"))
	if err != nil {
		return badRequest(c, "ID de producto inválido")
	}

	explanation, err := a.RecommendationService.ExplainForUser(userID, productID)
	if err != nil {
		return serviceError(c, err, "Error al generar explicación")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"usuario_id":  explanation.UserID,
			"producto_id": explanation.ProductID,
			"explicacion": explanation.Text,
			"puntuacion":  int(math.Round(explanation.Score)),
			"factores":    explanation.Reasons,
		},
	})
}

func (a *ApiWrapper) SimilarProducts(c echo.Context) error {
	productID, err := parseID(c.Param("producto_id"))
	if err != nil {
		return badRequest(c, "ID de producto inválido")
	}

	result, err := a.RecommendationService.SimilarProducts(productID)
	if err != nil {
		return serviceError(c, err, "Error al buscar productos similares")
	}

	similar := make([]echo.Map, 0, len(result.Similar))
	for _, p := range result.Similar {
		similar = append(similar, echo.Map{
			"id":                  p.ID,
			"nombre":              p.Name,
			"precio_original":     p.OriginalPrice,
			"precio_descuento":    p.DiscountPrice,
			"cantidad_disponible": p.Quantity,
			"restaurante": echo.Map{
				"nombre":      p.Restaurant.Name,
				"tipo_cocina": p.Restaurant.CuisineType,
			},
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"producto_base": echo.Map{
				"id":          result.Base.ID,
				"nombre":      result.Base.Name,
				"tipo_cocina": result.Base.Restaurant.CuisineType,
			},
			"productos_similares": similar,
		},
	})
}

func (a *ApiWrapper) SavePreferences(c echo.Context) error {
	userID, err := parseID(c.Param("usuario_id"))
	if err != nil {
		return badRequest(c, "ID de usuario inválido")
	}

	var req entity.PreferencesAPIRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Preferencias inválidas")
	}

	stored, err := a.RecommendationService.SavePreferences(userID, req.Profile())
	if err != nil {
		return serviceError(c, err, "Error al guardar preferencias")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Preferencias guardadas exitosamente",
		"data": echo.Map{
			"usuario_id":             stored.UserID,
			"preferencias_guardadas": stored,
		},
	})
}

func (a *ApiWrapper) UserStats(c echo.Context) error {
	userID, err := parseID(c.Param("usuario_id"))
	if err != nil {
		return badRequest(c, "ID de usuario inválido")
	}

	result, err := a.RecommendationService.UserStats(userID)
	if err != nil {
		return serviceError(c, err, "Error al obtener estadísticas")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"usuario": echo.Map{
				"id":             result.User.ID,
				"nombre":         result.User.Name,
				"fecha_registro": result.User.CreatedAt,
			},
			"estadisticas":     result.Stats,
			"recomendacion_ia": result.Hint,
		},
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"success": false,
		"message": message,
	})
}

func serviceError(c echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrUserNotFound) ||
		errors.Is(err, service.ErrProductNotFound) ||
		errors.Is(err, service.ErrNoRecommendation) {
		status = http.StatusNotFound
	}
	return c.JSON(status, echo.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
