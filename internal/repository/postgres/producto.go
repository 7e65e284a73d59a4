package postgres

import (
	"time"

	"github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"
)

func (r *RepoDatabase) GetProductByID(id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.DB.Preload("Restaurant").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *RepoDatabase) ListAvailableProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Preload("Restaurant").
		Where("activo = ? AND cantidad_disponible > ? AND fecha_caducidad > ?", true, 0, time.Now()).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
