package services

import (
	"strings"
	"time"

	"shopterm/internal/models"
	"shopterm/internal/repositories"
)

type OrderService struct {
	orderRepo *repositories.OrderRepository
	pageSize  int
}

func NewOrderService(orderRepo *repositories.OrderRepository, pageSize int) *OrderService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &OrderService{orderRepo: orderRepo, pageSize: pageSize}
}

// Checkout converts the customer's cart into an order and returns the new
// order number. Stock is decremented and the cart cleared atomically.
func (s *OrderService) Checkout(cid, sessionNo int, shippingAddress string, odate time.Time) (int, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return 0, ErrEmptyAddress
	}
	return s.orderRepo.CreateFromCart(cid, sessionNo, shippingAddress, odate)
}

// ListOrders returns one page of the customer's orders, newest first,
// with the total order count.
func (s *OrderService) ListOrders(cid, page int) ([]models.Order, int, error) {
	return s.orderRepo.ListByCustomer(cid, page, s.pageSize)
}

// OrderDetail returns the order and its lines; the order is nil when the
// order number is unknown.
func (s *OrderService) OrderDetail(ono int) (*models.Order, []models.OrderLine, error) {
	order, err := s.orderRepo.FindByOno(ono)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, nil
	}
	lines, err := s.orderRepo.Lines(ono)
	if err != nil {
		return nil, nil, err
	}
	return order, lines, nil
}

// OrderTotal returns the grand total of an order.
func (s *OrderService) OrderTotal(ono int) (float64, error) {
	return s.orderRepo.Total(ono)
}
