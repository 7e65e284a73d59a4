package repository

import "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"

type PreferenceRepository interface {
	// GetPreferencesByUser returns (nil, nil) when the user has none saved.
	GetPreferencesByUser(userID uint) (*entity.StoredPreferences, error)
	// SavePreferences inserts or replaces the user's stored preferences.
	SavePreferences(prefs *entity.StoredPreferences) error
}
