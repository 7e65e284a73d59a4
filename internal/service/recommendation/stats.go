package recommendation

import (
	"math"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
)

const noDataLabel = "No disponible"

// buildStats aggregates a user's reservation history. Favorites resolve ties
// to the first-encountered cuisine or restaurant.
func buildStats(history []entity.Reservation) entity.UserStats {
	stats := entity.UserStats{
		TotalReservations:  len(history),
		FavoriteCuisine:    noDataLabel,
		FavoriteRestaurant: noDataLabel,
	}

	cuisineCounts := make(map[string]int)
	restaurantCounts := make(map[string]int)
	var cuisineOrder, restaurantOrder []string
	var totalSpent float64

	for _, r := range history {
		totalSpent += r.TotalPrice

		cuisine := r.Product.Restaurant.CuisineType
		restaurant := r.Product.Restaurant.Name
		if cuisine != "" {
			if _, seen := cuisineCounts[cuisine]; !seen {
				cuisineOrder = append(cuisineOrder, cuisine)
			}
			cuisineCounts[cuisine]++
		}
		if restaurant != "" {
			if _, seen := restaurantCounts[restaurant]; !seen {
				restaurantOrder = append(restaurantOrder, restaurant)
			}
			restaurantCounts[restaurant]++
		}
	}

	if top := topByCount(cuisineOrder, cuisineCounts); top != "" {
		stats.FavoriteCuisine = top
	}
	if top := topByCount(restaurantOrder, restaurantCounts); top != "" {
		stats.FavoriteRestaurant = top
	}
	stats.CuisinesTried = len(cuisineCounts)
	stats.RestaurantsVisited = len(restaurantCounts)

	stats.TotalSpent = roundCents(totalSpent)
	if len(history) > 0 {
		stats.AverageSpend = roundCents(totalSpent / float64(len(history)))
	}
	return stats
}

func topByCount(order []string, counts map[string]int) string {
	best := ""
	bestCount := 0
	for _, k := range order {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return best
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
