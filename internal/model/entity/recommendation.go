package entity

// PreferenceProfile is the effective preference set the recommendation engine
// scores against. It is built fresh per request, never persisted.
type PreferenceProfile struct {
	FavoriteCuisines []string `json:"tipos_cocina_favoritos"`
	MaxPrice         float64  `json:"precio_maximo"`
	MaxDistanceKm    float64  `json:"distancia_maxima"`
	TimeSlots        []string `json:"horarios_preferidos"`
	AvoidTerms       []string `json:"productos_evitar"`
}

// ScoredRecommendation is one ranked candidate with the reasons that made up
// its score, in factor-evaluation order.
type ScoredRecommendation struct {
	Product Product  `json:"producto"`
	Score   float64  `json:"puntuacion"`
	Reasons []string `json:"razones"`
}

// RecommendationAPIRequest is the body of POST /api/v1/ai/recomendaciones.
type RecommendationAPIRequest struct {
	UserID      uint               `json:"usuario_id" validate:"required"`
	Preferences *PreferenceProfile `json:"preferencias,omitempty"`
}

// PreferencesAPIRequest is the body of POST /api/v1/ai/preferencias/:usuario_id.
type PreferencesAPIRequest struct {
	FavoriteCuisines []string `json:"tipos_cocina_favoritos" validate:"max=10"`
	MaxPrice         float64  `json:"precio_maximo" validate:"gte=0"`
	MaxDistanceKm    float64  `json:"distancia_maxima" validate:"gte=0"`
	TimeSlots        []string `json:"horarios_preferidos" validate:"max=10"`
	AvoidTerms       []string `json:"productos_evitar" validate:"max=20"`
}

// Profile converts the request body into the engine's value object.
func (r *PreferencesAPIRequest) Profile() PreferenceProfile {
	return PreferenceProfile{
		FavoriteCuisines: r.FavoriteCuisines,
		MaxPrice:         r.MaxPrice,
		MaxDistanceKm:    r.MaxDistanceKm,
		TimeSlots:        r.TimeSlots,
		AvoidTerms:       r.AvoidTerms,
	}
}

// RecommendationResult is what the service returns for a recommendation run.
type RecommendationResult struct {
	User            User
	Recommendations []ScoredRecommendation
}

// RecommendationExplanation carries the formatted explanation for a single
// user/product pair.
type RecommendationExplanation struct {
	UserID    uint
	ProductID uint
	Text      string
	Score     float64
	Reasons   []string
}

// SimilarProductsResult holds a base product and its closest matches, best
// match first.
type SimilarProductsResult struct {
	Base    Product
	Similar []Product
}

// UserStats summarizes a user's reservation history.
type UserStats struct {
	TotalReservations  int     `json:"total_reservas"`
	TotalSpent         float64 `json:"total_gastado"`
	AverageSpend       float64 `json:"gasto_promedio"`
	FavoriteCuisine    string  `json:"tipo_cocina_favorito"`
	FavoriteRestaurant string  `json:"restaurante_favorito"`
	CuisinesTried      int     `json:"tipos_cocina_probados"`
	RestaurantsVisited int     `json:"restaurantes_visitados"`
}

// UserStatsResult pairs the stats with the user they describe and a hint about
// whether the history is deep enough for personalized recommendations.
type UserStatsResult struct {
	User  User
	Stats UserStats
	Hint  string
}
