package recommendation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
)

// GenerateRecommendations scores every eligible candidate for a user and
// returns the top matches, highest score first. It is a pure computation over
// its arguments; history and candidates come from the caller.
func (s *Service) GenerateRecommendations(user *entity.User, products []entity.Product, history []entity.Reservation, explicit *entity.PreferenceProfile, now time.Time) []entity.ScoredRecommendation {
	inferred := s.inferProfile(history)
	prefs := mergePreferences(inferred, explicit)

	recs := make([]entity.ScoredRecommendation, 0, len(products))
	for _, p := range products {
		if !p.Active || p.Quantity <= 0 {
			continue
		}
		recs = append(recs, scoreProduct(p, prefs, history, now))
	}

	// Stable sort: candidates with equal scores keep their input order.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > s.topN {
		recs = recs[:s.topN]
	}
	return recs
}

// scoreProduct applies the additive factor table to one candidate. Factor
// order is fixed; it determines the sequence of the reason strings.
func scoreProduct(p entity.Product, prefs entity.PreferenceProfile, history []entity.Reservation, now time.Time) entity.ScoredRecommendation {
	var score float64
	var reasons []string

	if containsFold(prefs.FavoriteCuisines, p.Restaurant.CuisineType) {
		score += 30
		reasons = append(reasons, fmt.Sprintf("Te gusta la cocina %s", p.Restaurant.CuisineType))
	}

	discount := p.DiscountPercent()
	if discount >= 50 {
		score += 25
		reasons = append(reasons, fmt.Sprintf("Descuento del %d%%", int(math.Round(discount))))
	} else if discount >= 30 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("Buen descuento del %d%%", int(math.Round(discount))))
	}

	if p.DiscountPrice <= prefs.MaxPrice {
		score += 20
		reasons = append(reasons, "Precio dentro de tu rango")
	}

	// Expired products yield negative hours; the thresholds still apply.
	hoursToExpiry := p.ExpiresAt.Sub(now).Hours()
	if hoursToExpiry <= 4 {
		score += 15
		reasons = append(reasons, "¡Caduca pronto! Mejor precio")
	} else if hoursToExpiry <= 12 {
		score += 10
		reasons = append(reasons, "Disponible por poco tiempo")
	}

	if p.Quantity >= 5 {
		score += 10
		reasons = append(reasons, "Buena disponibilidad")
	} else if p.Quantity >= 2 {
		score += 5
		reasons = append(reasons, "Disponibilidad limitada")
	}

	if reservedRecently(history, p.ID, now) {
		score -= 10
		reasons = append(reasons, "Ya reservaste este producto recientemente")
	}

	// The avoid-list penalty deliberately emits no reason.
	name := strings.ToLower(p.Name)
	for _, term := range prefs.AvoidTerms {
		if term != "" && strings.Contains(name, strings.ToLower(term)) {
			score -= 20
			break
		}
	}

	if score < 0 {
		score = 0
	}
	return entity.ScoredRecommendation{Product: p, Score: score, Reasons: reasons}
}

// reservedRecently reports whether the product was reserved within the last
// seven days, boundary inclusive.
func reservedRecently(history []entity.Reservation, productID uint, now time.Time) bool {
	for _, r := range history {
		if r.ProductID == productID && now.Sub(r.CreatedAt).Hours()/24 <= 7 {
			return true
		}
	}
	return false
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
