package services

import (
	"context"
	"fmt"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"github.com/fitlogue/fitlogue/pkg/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Orders struct {
	orders    repository.OrderRepository
	histories repository.OrderHistoryRepository
	items     repository.ItemsRepository
}

func NewOrders(
	orders repository.OrderRepository,
	histories repository.OrderHistoryRepository,
	items repository.ItemsRepository,
) *Orders {
	return &Orders{orders: orders, histories: histories, items: items}
}

// TotalOrderedQuantity sums the quantity over the user's entire order
// history. No history is not an error, it is zero.
func (s *Orders) TotalOrderedQuantity(ctx context.Context, userID uint) (int, error) {
	total, err := s.histories.TotalQuantityByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return total, nil
}

func (s *Orders) ListHistory(ctx context.Context, userID uint) ([]models.OrderHistory, error) {
	lines, err := s.histories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return lines, nil
}

type OrderLine struct {
	ItemsID  uint
	Quantity int
}

type PlaceOrderRequest struct {
	Lines   []OrderLine
	Address models.ShippingAddress
}

// PlaceOrder snapshots the item names and prices into history lines and
// writes the order plus its shipping address atomically.
func (s *Orders) PlaceOrder(ctx context.Context, userID uint, request PlaceOrderRequest) (models.Order, error) {
	var order models.Order

	if len(request.Lines) == 0 {
		return order, fmt.Errorf("%w: an order needs at least one line", ErrValidation)
	}
	for _, line := range request.Lines {
		if line.Quantity <= 0 {
			return order, fmt.Errorf("%w: ordered quantity must be positive", ErrValidation)
		}
	}

	itemIDs := lo.Uniq(lo.Map(request.Lines, func(line OrderLine, index int) uint {
		return line.ItemsID
	}))
	items, err := s.items.ListByIDs(ctx, itemIDs)
	if err != nil {
		return order, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(items) != len(itemIDs) {
		return order, fmt.Errorf("%w: some ordered items do not exist", ErrNotFound)
	}
	itemMap := lo.SliceToMap(items, func(item models.Items) (uint, models.Items) {
		return item.ID, item
	})

	lines := lo.Map(request.Lines, func(line OrderLine, index int) models.OrderHistory {
		item := itemMap[line.ItemsID]
		return models.OrderHistory{
			ItemsID:  item.ID,
			ItemName: item.Name,
			Quantity: line.Quantity,
			Price:    item.Price,
		}
	})

	order = models.Order{
		Serial:  uuid.NewString(),
		UserID:  userID,
		Address: request.Address,
	}
	for _, line := range lines {
		order.TotalQuantity += line.Quantity
		order.TotalPrice += line.Price * int64(line.Quantity)
	}

	if err := s.orders.CreateWithLines(ctx, &order, lines); err != nil {
		return order, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return order, nil
}
