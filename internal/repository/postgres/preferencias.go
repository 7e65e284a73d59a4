package postgres

import (
	"errors"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
	"gorm.io/gorm"
)

func (r *RepoDatabase) GetPreferencesByUser(userID uint) (*entity.StoredPreferences, error) {
	var prefs entity.StoredPreferences
	err := r.DB.First(&prefs, "id_usuario = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *RepoDatabase) SavePreferences(prefs *entity.StoredPreferences) error {
	return r.DB.Save(prefs).Error
}
