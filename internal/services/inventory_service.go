package services

import (
	"errors"

	"shopterm/internal/repositories"
)

type InventoryService struct {
	productRepo *repositories.ProductRepository
}

func NewInventoryService(productRepo *repositories.ProductRepository) *InventoryService {
	return &InventoryService{productRepo: productRepo}
}

// UpdatePriceStock updates only the provided fields of a product and
// reports whether a row changed. Both fields nil is a no-op.
func (s *InventoryService) UpdatePriceStock(pid int, newPrice *float64, newStock *int) (bool, error) {
	if newPrice == nil && newStock == nil {
		return false, nil
	}
	if newPrice != nil && *newPrice < 0 {
		return false, errors.New("price cannot be negative")
	}
	if newStock != nil && *newStock < 0 {
		return false, errors.New("stock count cannot be negative")
	}

	product, err := s.productRepo.FindByPID(pid)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	price := product.Price
	stock := product.StockCount
	if newPrice != nil {
		price = *newPrice
	}
	if newStock != nil {
		stock = *newStock
	}
	return s.productRepo.UpdatePriceStock(pid, price, stock)
}
