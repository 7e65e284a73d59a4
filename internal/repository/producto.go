package repository

import "github.com/Jkennedy2004/TOO-GOOD-TO-GO/internal/model/entity"

type ProductRepository interface {
	// GetProductByID loads a product with its restaurant association.
	GetProductByID(id uint) (*entity.Product, error)
	// ListAvailableProducts returns active, in-stock, not-yet-expired offers.
	ListAvailableProducts() ([]entity.Product, error)
}
