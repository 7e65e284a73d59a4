package recommendation

import (
	"math"
	"sort"
	"strings"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
)

// FindSimilarProducts ranks the pool by similarity to base and returns the
// closest offers, best match first. The base product itself and inactive or
// out-of-stock offers are excluded.
func (s *Service) FindSimilarProducts(base entity.Product, pool []entity.Product) []entity.Product {
	type scoredProduct struct {
		product entity.Product
		score   float64
	}

	candidates := make([]scoredProduct, 0, len(pool))
	for _, p := range pool {
		if p.ID == base.ID || !p.Active || p.Quantity <= 0 {
			continue
		}
		candidates = append(candidates, scoredProduct{product: p, score: similarity(base, p)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > s.similarTopN {
		candidates = candidates[:s.similarTopN]
	}

	out := make([]entity.Product, len(candidates))
	for i, c := range candidates {
		out[i] = c.product
	}
	return out
}

// similarity is a heuristic closeness measure, not a distance metric: the
// cuisine and price terms are symmetric, the name-overlap term counts each
// word of a's name found among b's.
func similarity(a, b entity.Product) float64 {
	var score float64

	if a.Restaurant.CuisineType == b.Restaurant.CuisineType {
		score += 40
	}

	priceDiff := math.Abs(a.DiscountPrice - b.DiscountPrice)
	if priceDiff <= 5 {
		score += 30
	} else if priceDiff <= 10 {
		score += 15
	}

	wordsA := strings.Fields(strings.ToLower(a.Name))
	wordsB := strings.Fields(strings.ToLower(b.Name))
	for _, w := range wordsA {
		for _, v := range wordsB {
			if w == v {
				score += 10
				break
			}
		}
	}

	return score
}
