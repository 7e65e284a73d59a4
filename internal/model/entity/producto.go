package entity

import "time"

// Product represents a surplus-food offer from the 'producto' table.
// DiscountPrice is expected to be at most OriginalPrice and Quantity
// non-negative; both are enforced when offers are created, not here.
type Product struct {
	ID            uint       `json:"id_producto" gorm:"column:id_producto;primaryKey"`
	Name          string     `json:"nombre" gorm:"column:nombre"`
	Description   string     `json:"descripcion,omitempty" gorm:"column:descripcion;type:text"`
	OriginalPrice float64    `json:"precio_original" gorm:"column:precio_original"`
	DiscountPrice float64    `json:"precio_descuento" gorm:"column:precio_descuento"`
	Quantity      int        `json:"cantidad_disponible" gorm:"column:cantidad_disponible"`
	ExpiresAt     time.Time  `json:"fecha_caducidad" gorm:"column:fecha_caducidad"`
	Active        bool       `json:"activo" gorm:"column:activo;default:true"`
	ImageURL      string     `json:"imagen_url,omitempty" gorm:"column:imagen_url"`
	CreatedAt     time.Time  `json:"fecha_creacion" gorm:"column:fecha_creacion;autoCreateTime"`
	RestaurantID  uint       `json:"-" gorm:"column:id_restaurante"`
	Restaurant    Restaurant `json:"restaurante" gorm:"foreignKey:RestaurantID"`
}

func (Product) TableName() string {
	return "producto"
}

// DiscountPercent returns the percentage off the original price. Callers must
// supply a product with a positive original price.
func (p *Product) DiscountPercent() float64 {
	return (p.OriginalPrice - p.DiscountPrice) / p.OriginalPrice * 100
}
