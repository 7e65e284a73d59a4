package recommendation

import (
	"fmt"
	"math"
	"strings"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
)

// Explain renders a human-readable explanation of a scored recommendation.
// Pure formatting; every number shown was computed by the scorer.
func (s *Service) Explain(rec entity.ScoredRecommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Te recomendamos \"%s\" de %s (Puntuación: %d/100)\n\n",
		rec.Product.Name, rec.Product.Restaurant.Name, int(math.Round(rec.Score)))

	b.WriteString("¿Por qué te lo recomendamos?\n")
	for i, reason := range rec.Reasons {
		fmt.Fprintf(&b, "%d. %s\n", i+1, reason)
	}

	fmt.Fprintf(&b, "\n💰 Precio original: $%.2f", rec.Product.OriginalPrice)
	fmt.Fprintf(&b, "\n💸 Precio con descuento: $%.2f", rec.Product.DiscountPrice)
	fmt.Fprintf(&b, "\n🎯 Ahorras: %d%%", int(math.Round(rec.Product.DiscountPercent())))

	return b.String()
}
