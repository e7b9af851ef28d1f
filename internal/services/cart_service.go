package services

import (
	"shopterm/internal/models"
	"shopterm/internal/repositories"
)

type CartService struct {
	cartRepo    *repositories.CartRepository
	productRepo *repositories.ProductRepository
}

func NewCartService(
	cartRepo *repositories.CartRepository,
	productRepo *repositories.ProductRepository,
) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// List returns the customer's cart aggregated per product.
func (s *CartService) List(cid, sessionNo int) ([]models.CartItem, error) {
	return s.cartRepo.ListAggregated(cid, sessionNo)
}

// Add increases the customer's total quantity for a product, capped at the
// product's stock. Non-positive quantities and out-of-stock products are
// ignored.
func (s *CartService) Add(cid, sessionNo, pid, qty int) error {
	if qty <= 0 {
		return nil
	}
	stock, err := s.productRepo.Stock(pid)
	if err != nil {
		return err
	}
	if stock <= 0 {
		return nil
	}

	current, err := s.cartRepo.TotalQty(cid, pid)
	if err != nil {
		return err
	}
	newTotal := current + qty
	if newTotal > stock {
		newTotal = stock
	}
	return s.cartRepo.Replace(cid, sessionNo, pid, newTotal)
}

// SetQty sets the customer's total quantity for a product. Zero removes
// the item; quantities above stock are clamped down to it.
func (s *CartService) SetQty(cid, sessionNo, pid, qty int) error {
	if qty < 0 {
		return ErrNegativeQuantity
	}
	if qty == 0 {
		return s.cartRepo.Delete(cid, pid)
	}

	stock, err := s.productRepo.Stock(pid)
	if err != nil {
		return err
	}
	if qty > stock {
		qty = stock
	}
	if qty == 0 {
		return s.cartRepo.Delete(cid, pid)
	}
	return s.cartRepo.Replace(cid, sessionNo, pid, qty)
}

// SetQtyIfInStock sets the quantity only when it does not exceed stock;
// it reports whether the cart was changed.
func (s *CartService) SetQtyIfInStock(cid, sessionNo, pid, qty int) (bool, error) {
	if qty < 0 {
		return false, nil
	}
	stock, err := s.productRepo.Stock(pid)
	if err != nil {
		return false, err
	}
	if qty > stock {
		return false, nil
	}
	if qty == 0 {
		if err := s.cartRepo.Delete(cid, pid); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := s.cartRepo.Replace(cid, sessionNo, pid, qty); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a product from the cart.
func (s *CartService) Remove(cid, sessionNo, pid int) error {
	return s.cartRepo.Delete(cid, pid)
}

// Clear empties the customer's cart.
func (s *CartService) Clear(cid int) error {
	return s.cartRepo.Clear(cid)
}
