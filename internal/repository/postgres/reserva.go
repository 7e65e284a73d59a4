package postgres

import "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"

func (r *RepoDatabase) ListReservationsByUser(userID uint) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Preload("Product.Restaurant").
		Where("id_usuario = ?", userID).
		Order("fecha_reserva DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
