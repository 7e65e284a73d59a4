package service

import (
	"errors"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
)

var (
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrNoRecommendation = errors.New("no se pudo generar recomendación para este producto")
)

type RecommendationService interface {
	// RecommendForUser builds the personalized top-N for a user. When explicit
	// is nil, preferences stored for the user (if any) are applied instead.
	RecommendForUser(userID uint, explicit *entity.PreferenceProfile) (*entity.RecommendationResult, error)
	// ExplainForUser renders why a single product would be recommended.
	ExplainForUser(userID, productID uint) (*entity.RecommendationExplanation, error)
	// SimilarProducts finds the offers closest to a base product.
	SimilarProducts(productID uint) (*entity.SimilarProductsResult, error)
	// SavePreferences persists a user's explicit preferences.
	SavePreferences(userID uint, prefs entity.PreferenceProfile) (*entity.StoredPreferences, error)
	// UserStats summarizes the user's reservation history.
	UserStats(userID uint) (*entity.UserStatsResult, error)
}
