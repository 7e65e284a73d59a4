package postgres

import "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"

func (r *RepoDatabase) GetUserByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
