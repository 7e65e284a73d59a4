package recommendation

import (
	"testing"
	"time"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	user     *entity.User
	product  *entity.Product
	products []entity.Product
	history  []entity.Reservation
	prefs    *entity.StoredPreferences

	saved *entity.StoredPreferences
}

func (f *fakeRepo) GetUserByID(id uint) (*entity.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

func (f *fakeRepo) GetProductByID(id uint) (*entity.Product, error) {
	if f.product == nil || f.product.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.product, nil
}

func (f *fakeRepo) ListAvailableProducts() ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeRepo) ListReservationsByUser(userID uint) ([]entity.Reservation, error) {
	return f.history, nil
}

func (f *fakeRepo) GetPreferencesByUser(userID uint) (*entity.StoredPreferences, error) {
	return f.prefs, nil
}

func (f *fakeRepo) SavePreferences(prefs *entity.StoredPreferences) error {
	f.saved = prefs
	return nil
}

func newServiceWithRepo(repo *fakeRepo) *Service {
	s := newTestService()
	s.products = repo
	s.reservations = repo
	s.users = repo
	s.preferences = repo
	return s
}

func TestRecommendForUserUnknownUser(t *testing.T) {
	s := newServiceWithRepo(&fakeRepo{})

	_, err := s.RecommendForUser(99, nil)

	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestRecommendForUserAppliesStoredPreferences(t *testing.T) {
	pizza := similarityProduct(1, "Pizza napolitana", "italiana", 4)
	pasta := similarityProduct(2, "Pasta al pesto", "italiana", 4)
	repo := &fakeRepo{
		user:     &entity.User{ID: 7, Name: "Ana"},
		products: []entity.Product{pizza, pasta},
		prefs: &entity.StoredPreferences{
			UserID:     7,
			AvoidTerms: entity.StringList{"pizza"},
		},
	}
	s := newServiceWithRepo(repo)

	result, err := s.RecommendForUser(7, nil)

	require.NoError(t, err)
	require.Len(t, result.Recommendations, 2)
	// The stored avoid term pushes the pizza below the pasta.
	assert.Equal(t, uint(2), result.Recommendations[0].Product.ID)
	assert.Greater(t, result.Recommendations[0].Score, result.Recommendations[1].Score)
	assert.Equal(t, "Ana", result.User.Name)
}

func TestRecommendForUserExplicitOverridesStored(t *testing.T) {
	pizza := similarityProduct(1, "Pizza napolitana", "italiana", 4)
	repo := &fakeRepo{
		user:     &entity.User{ID: 7},
		products: []entity.Product{pizza},
		prefs: &entity.StoredPreferences{
			UserID:     7,
			AvoidTerms: entity.StringList{"pizza"},
		},
	}
	s := newServiceWithRepo(repo)

	withStored, err := s.RecommendForUser(7, nil)
	require.NoError(t, err)
	withExplicit, err := s.RecommendForUser(7, &entity.PreferenceProfile{MaxPrice: 20})
	require.NoError(t, err)

	// Explicit request preferences bypass the stored avoid list entirely.
	assert.Greater(t, withExplicit.Recommendations[0].Score, withStored.Recommendations[0].Score)
}

func TestExplainForUser(t *testing.T) {
	product := similarityProduct(3, "Pasta del día", "italiana", 4)
	product.Restaurant.Name = "Trattoria Roma"
	repo := &fakeRepo{
		user:    &entity.User{ID: 7, Name: "Ana"},
		product: &product,
	}
	s := newServiceWithRepo(repo)

	explanation, err := s.ExplainForUser(7, 3)

	require.NoError(t, err)
	assert.Equal(t, uint(7), explanation.UserID)
	assert.Equal(t, uint(3), explanation.ProductID)
	assert.Contains(t, explanation.Text, "Trattoria Roma")
	assert.NotEmpty(t, explanation.Reasons)
}

func TestExplainForUserIneligibleProduct(t *testing.T) {
	product := similarityProduct(3, "Pasta del día", "italiana", 4)
	product.Active = false
	repo := &fakeRepo{
		user:    &entity.User{ID: 7},
		product: &product,
	}
	s := newServiceWithRepo(repo)

	_, err := s.ExplainForUser(7, 3)

	assert.ErrorIs(t, err, service.ErrNoRecommendation)
}

func TestSimilarProductsUnknownProduct(t *testing.T) {
	s := newServiceWithRepo(&fakeRepo{})

	_, err := s.SimilarProducts(5)

	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestSavePreferences(t *testing.T) {
	repo := &fakeRepo{user: &entity.User{ID: 7}}
	s := newServiceWithRepo(repo)

	stored, err := s.SavePreferences(7, entity.PreferenceProfile{
		FavoriteCuisines: []string{"vegana"},
		MaxPrice:         12,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	assert.Equal(t, uint(7), repo.saved.UserID)
	assert.Equal(t, entity.StringList{"vegana"}, stored.FavoriteCuisines)
	assert.Equal(t, 12.0, stored.MaxPrice)
}

func TestUserStatsHint(t *testing.T) {
	tests := []struct {
		name         string
		reservations int
		wantHint     string
	}{
		{"sparse history", 2, "Realiza más reservas para obtener mejores recomendaciones"},
		{"enough history", 3, "Tienes suficiente historial para recomendaciones personalizadas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var history []entity.Reservation
			for i := 0; i < tt.reservations; i++ {
				history = append(history, statsReservation("italiana", "Trattoria Roma", 10))
			}
			s := newServiceWithRepo(&fakeRepo{
				user:    &entity.User{ID: 7},
				history: history,
			})

			result, err := s.UserStats(7)

			require.NoError(t, err)
			assert.Equal(t, tt.wantHint, result.Hint)
			assert.Equal(t, tt.reservations, result.Stats.TotalReservations)
		})
	}
}

func TestGenerateRecommendationsIsDeterministic(t *testing.T) {
	s := newTestService()
	products := []entity.Product{
		similarityProduct(1, "Oferta uno", "italiana", 4),
		similarityProduct(2, "Oferta dos", "mexicana", 4),
	}
	history := []entity.Reservation{
		reservationWith("italiana", 8, 9, testNow.AddDate(0, 0, -10)),
	}

	first := s.GenerateRecommendations(nil, products, history, nil, time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	second := s.GenerateRecommendations(nil, products, history, nil, time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, first, second)
}
