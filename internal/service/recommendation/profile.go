package recommendation

import (
	"sort"
	"strings"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
)

const maxFavoriteCuisines = 3

// inferProfile derives an implicit preference profile from a user's
// reservation history. An empty history yields the configured defaults.
func (s *Service) inferProfile(history []entity.Reservation) entity.PreferenceProfile {
	if len(history) == 0 {
		return s.defaultProfile()
	}

	// Cuisine frequencies are reduced into a first-seen-ordered slice so that
	// ties resolve to first-encountered order, independent of map iteration.
	counts := make(map[string]int)
	var order []string
	var totalSpent, maxSpent float64

	for _, r := range history {
		if cuisine := strings.ToLower(r.Product.Restaurant.CuisineType); cuisine != "" {
			if _, seen := counts[cuisine]; !seen {
				order = append(order, cuisine)
			}
			counts[cuisine]++
		}
		totalSpent += r.TotalPrice
		if r.TotalPrice > maxSpent {
			maxSpent = r.TotalPrice
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxFavoriteCuisines {
		order = order[:maxFavoriteCuisines]
	}

	// The price ceiling is never below the user's largest past purchase.
	avgSpent := totalSpent / float64(len(history))
	maxPrice := avgSpent * 1.5
	if maxSpent > maxPrice {
		maxPrice = maxSpent
	}

	return entity.PreferenceProfile{
		FavoriteCuisines: order,
		MaxPrice:         maxPrice,
		MaxDistanceKm:    s.defaults.MaxDistanceKm,
		TimeSlots:        []string{s.defaults.TimeSlot},
	}
}

func (s *Service) defaultProfile() entity.PreferenceProfile {
	return entity.PreferenceProfile{
		FavoriteCuisines: append([]string(nil), s.defaults.Cuisines...),
		MaxPrice:         s.defaults.MaxPrice,
		MaxDistanceKm:    s.defaults.MaxDistanceKm,
		TimeSlots:        []string{s.defaults.TimeSlot},
	}
}

// mergePreferences combines the inferred profile with explicit preferences.
// Explicit scalar values win when set; list values are unioned with explicit
// entries first, except time slots where a non-empty explicit list replaces
// the inferred one.
func mergePreferences(inferred entity.PreferenceProfile, explicit *entity.PreferenceProfile) entity.PreferenceProfile {
	if explicit == nil {
		return inferred
	}

	merged := entity.PreferenceProfile{
		FavoriteCuisines: unionStrings(explicit.FavoriteCuisines, inferred.FavoriteCuisines),
		MaxPrice:         explicit.MaxPrice,
		MaxDistanceKm:    explicit.MaxDistanceKm,
		TimeSlots:        explicit.TimeSlots,
		AvoidTerms:       unionStrings(explicit.AvoidTerms, inferred.AvoidTerms),
	}
	if merged.MaxPrice == 0 {
		merged.MaxPrice = inferred.MaxPrice
	}
	if merged.MaxDistanceKm == 0 {
		merged.MaxDistanceKm = inferred.MaxDistanceKm
	}
	if len(merged.TimeSlots) == 0 {
		merged.TimeSlots = inferred.TimeSlots
	}
	return merged
}

func unionStrings(first, second []string) []string {
	seen := make(map[string]bool, len(first)+len(second))
	out := make([]string, 0, len(first)+len(second))
	for _, list := range [][]string{first, second} {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
