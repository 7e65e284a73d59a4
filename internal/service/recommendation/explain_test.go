package recommendation

import (
	"testing"
	"time"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	s := newTestService()
	rec := scoreProduct(testProduct(), testPrefs(), nil, testNow)

	text := s.Explain(rec)

	assert.Contains(t, text, `Te recomendamos "Pasta del día" de Trattoria Roma`)
	assert.Contains(t, text, "(Puntuación: 100/100)")
	assert.Contains(t, text, "¿Por qué te lo recomendamos?")
	assert.Contains(t, text, "1. Te gusta la cocina italiana")
	assert.Contains(t, text, "5. Buena disponibilidad")
	assert.Contains(t, text, "Precio original: $10.00")
	assert.Contains(t, text, "Precio con descuento: $4.00")
	assert.Contains(t, text, "Ahorras: 60%")
}

func TestExplainZeroScore(t *testing.T) {
	s := newTestService()
	p := testProduct()
	p.Restaurant.CuisineType = "fusion"
	p.DiscountPrice = 9
	p.ExpiresAt = testNow.Add(48 * time.Hour)
	p.Quantity = 1
	prefs := entity.PreferenceProfile{MaxPrice: 1}

	rec := scoreProduct(p, prefs, nil, testNow)
	text := s.Explain(rec)

	assert.Contains(t, text, "(Puntuación: 0/100)")
	assert.NotContains(t, text, "1. ")
}
