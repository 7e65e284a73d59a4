package entity

import "time"

// Reservation represents a pickup reservation from the 'reserva' table.
// Reservations are immutable once created; the recommendation engine reads
// them as history only.
type Reservation struct {
	ID         uint      `json:"id_reserva" gorm:"column:id_reserva;primaryKey"`
	CreatedAt  time.Time `json:"fecha_reserva" gorm:"column:fecha_reserva;autoCreateTime"`
	PickupAt   time.Time `json:"fecha_recogida" gorm:"column:fecha_recogida"`
	Quantity   int       `json:"cantidad_reservada" gorm:"column:cantidad_reservada"`
	Status     string    `json:"estado_reserva" gorm:"column:estado_reserva;default:pendiente"` // pendiente, confirmada, completada, cancelada
	TotalPrice float64   `json:"precio_total" gorm:"column:precio_total"`
	PickupCode string    `json:"codigo_recogida,omitempty" gorm:"column:codigo_recogida"`
	ProductID  uint      `json:"-" gorm:"column:id_producto"`
	Product    Product   `json:"producto" gorm:"foreignKey:ProductID"`
	UserID     uint      `json:"-" gorm:"column:id_usuario"`
	User       User      `json:"usuario" gorm:"foreignKey:UserID"`
}

func (Reservation) TableName() string {
	return "reserva"
}
