package recommendation

import (
	"time"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/config"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/repository"
	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/repository/util"
)

// profileDefaults are the configured fallbacks used when a user has no
// reservation history to infer preferences from.
type profileDefaults struct {
	Cuisines      []string
	MaxPrice      float64
	MaxDistanceKm float64
	TimeSlot      string
}

type Service struct {
	products     repository.ProductRepository
	reservations repository.ReservationRepository
	users        repository.UserRepository
	preferences  repository.PreferenceRepository

	defaults    profileDefaults
	topN        int
	similarTopN int

	now func() time.Time
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *Service {
	return &Service{
		products:     repo.ProductRepo,
		reservations: repo.ReservationRepo,
		users:        repo.UserRepo,
		preferences:  repo.PreferenceRepo,
		defaults: profileDefaults{
			Cuisines:      config.RecDefaultCuisines,
			MaxPrice:      config.RecDefaultMaxPrice,
			MaxDistanceKm: config.RecDefaultMaxDistanceKm,
			TimeSlot:      config.RecDefaultTimeSlot,
		},
		topN:        config.RecTopN,
		similarTopN: config.RecSimilarTopN,
		now:         time.Now,
	}
}
