package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a JSON-encoded string slice in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// StoredPreferences persists a user's explicit preferences in the
// 'preferencias_usuario' table. They are merged with the inferred profile on
// every recommendation request.
type StoredPreferences struct {
	UserID           uint       `json:"usuario_id" gorm:"column:id_usuario;primaryKey"`
	FavoriteCuisines StringList `json:"tipos_cocina_favoritos" gorm:"column:tipos_cocina_favoritos;type:text"`
	MaxPrice         float64    `json:"precio_maximo" gorm:"column:precio_maximo"`
	MaxDistanceKm    float64    `json:"distancia_maxima" gorm:"column:distancia_maxima"`
	TimeSlots        StringList `json:"horarios_preferidos" gorm:"column:horarios_preferidos;type:text"`
	AvoidTerms       StringList `json:"productos_evitar" gorm:"column:productos_evitar;type:text"`
	UpdatedAt        time.Time  `json:"fecha_actualizacion" gorm:"column:fecha_actualizacion;autoUpdateTime"`
}

func (StoredPreferences) TableName() string {
	return "preferencias_usuario"
}

// Profile converts stored preferences into the engine's value object.
func (sp *StoredPreferences) Profile() PreferenceProfile {
	return PreferenceProfile{
		FavoriteCuisines: sp.FavoriteCuisines,
		MaxPrice:         sp.MaxPrice,
		MaxDistanceKm:    sp.MaxDistanceKm,
		TimeSlots:        sp.TimeSlots,
		AvoidTerms:       sp.AvoidTerms,
	}
}
