package repository

import "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"

type ReservationRepository interface {
	// ListReservationsByUser returns a user's reservation history, newest
	// first, with product and restaurant associations loaded.
	ListReservationsByUser(userID uint) ([]entity.Reservation, error)
}
