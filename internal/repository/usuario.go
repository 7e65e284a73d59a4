package repository

import "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"

type UserRepository interface {
	GetUserByID(id uint) (*entity.User, error)
}
