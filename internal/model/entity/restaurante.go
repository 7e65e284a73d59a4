package entity

// Restaurant represents a partner restaurant from the 'restaurante' table.
type Restaurant struct {
	ID          uint    `json:"id_restaurante" gorm:"column:id_restaurante;primaryKey"`
	Name        string  `json:"nombre" gorm:"column:nombre"`
	Address     string  `json:"direccion" gorm:"column:direccion"`
	CuisineType string  `json:"tipo_cocina" gorm:"column:tipo_cocina"`
	Schedule    string  `json:"horario" gorm:"column:horario"`
	Phone       string  `json:"telefono,omitempty" gorm:"column:telefono"`
	Email       string  `json:"email,omitempty" gorm:"column:email"`
	Latitude    float64 `json:"latitud,omitempty" gorm:"column:latitud"`
	Longitude   float64 `json:"longitud,omitempty" gorm:"column:longitud"`
	Active      bool    `json:"activo" gorm:"column:activo;default:true"`
	ImageURL    string  `json:"imagen_url,omitempty" gorm:"column:imagen_url"`
	Description string  `json:"descripcion,omitempty" gorm:"column:descripcion;type:text"`
}

func (Restaurant) TableName() string {
	return "restaurante"
}
