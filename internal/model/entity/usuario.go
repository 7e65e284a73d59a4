package entity

import "time"

// User represents a marketplace account from the 'usuario' table. Column and
// JSON names keep the original service's Spanish wire format.
type User struct {
	ID        uint      `json:"id_usuario" gorm:"column:id_usuario;primaryKey"`
	Name      string    `json:"nombre" gorm:"column:nombre"`
	Email     string    `json:"correo" gorm:"column:correo;uniqueIndex"`
	Password  string    `json:"-" gorm:"column:contrasena"`
	Role      string    `json:"tipo_usuario" gorm:"column:tipo_usuario;default:cliente"` // cliente, restaurante, admin
	Phone     string    `json:"telefono,omitempty" gorm:"column:telefono"`
	Active    bool      `json:"activo" gorm:"column:activo;default:true"`
	CreatedAt time.Time `json:"fecha_registro" gorm:"column:fecha_registro;autoCreateTime"`
}

func (User) TableName() string {
	return "usuario"
}
