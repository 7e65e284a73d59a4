package recommendation

import (
	"errors"
	"fmt"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service"
	"gorm.io/gorm"
)

func (s *Service) RecommendForUser(userID uint, explicit *entity.PreferenceProfile) (*entity.RecommendationResult, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, userLookupError(err)
	}

	products, err := s.products.ListAvailableProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to list available products: %w", err)
	}

	history, err := s.reservations.ListReservationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation history: %w", err)
	}

	if explicit == nil {
		stored, err := s.preferences.GetPreferencesByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored preferences: %w", err)
		}
		if stored != nil {
			profile := stored.Profile()
			explicit = &profile
		}
	}

	recs := s.GenerateRecommendations(user, products, history, explicit, s.now())
	return &entity.RecommendationResult{User: *user, Recommendations: recs}, nil
}

func (s *Service) ExplainForUser(userID, productID uint) (*entity.RecommendationExplanation, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, userLookupError(err)
	}

	product, err := s.products.GetProductByID(productID)
	if err != nil {
		return nil, productLookupError(err)
	}

	history, err := s.reservations.ListReservationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation history: %w", err)
	}

	recs := s.GenerateRecommendations(user, []entity.Product{*product}, history, nil, s.now())
	if len(recs) == 0 {
		return nil, service.ErrNoRecommendation
	}

	return &entity.RecommendationExplanation{
		UserID:    userID,
		ProductID: productID,
		Text:      s.Explain(recs[0]),
		Score:     recs[0].Score,
		Reasons:   recs[0].Reasons,
	}, nil
}

func (s *Service) SimilarProducts(productID uint) (*entity.SimilarProductsResult, error) {
	base, err := s.products.GetProductByID(productID)
	if err != nil {
		return nil, productLookupError(err)
	}

	pool, err := s.products.ListAvailableProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to list available products: %w", err)
	}

	return &entity.SimilarProductsResult{
		Base:    *base,
		Similar: s.FindSimilarProducts(*base, pool),
	}, nil
}

func (s *Service) SavePreferences(userID uint, prefs entity.PreferenceProfile) (*entity.StoredPreferences, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return nil, userLookupError(err)
	}

	stored := &entity.StoredPreferences{
		UserID:           userID,
		FavoriteCuisines: prefs.FavoriteCuisines,
		MaxPrice:         prefs.MaxPrice,
		MaxDistanceKm:    prefs.MaxDistanceKm,
		TimeSlots:        prefs.TimeSlots,
		AvoidTerms:       prefs.AvoidTerms,
	}
	if err := s.preferences.SavePreferences(stored); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return stored, nil
}

func (s *Service) UserStats(userID uint) (*entity.UserStatsResult, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, userLookupError(err)
	}

	history, err := s.reservations.ListReservationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation history: %w", err)
	}

	hint := "Realiza más reservas para obtener mejores recomendaciones"
	if len(history) >= 3 {
		hint = "Tienes suficiente historial para recomendaciones personalizadas"
	}

	return &entity.UserStatsResult{
		User:  *user,
		Stats: buildStats(history),
		Hint:  hint,
	}, nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrUserNotFound
	}
	return fmt.Errorf("failed to load user: %w", err)
}

func productLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrProductNotFound
	}
	return fmt.Errorf("failed to load product: %w", err)
}
