package repository

import (
	"context"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithLines persists the order, its shipping address and the
	// history lines in one transaction; none of them survive a failure of
	// the others.
	CreateWithLines(ctx context.Context, order *models.Order, lines []models.OrderHistory) error
	GetBySerial(ctx context.Context, serial string) (models.Order, error)
}

type OrderHistoryRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.OrderHistory, error)
	// TotalQuantityByUser sums the ordered quantity in a single aggregate
	// statement, so the result is one consistent snapshot under the storage
	// engine's default isolation.
	TotalQuantityByUser(ctx context.Context, userID uint) (int, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithLines(ctx context.Context, order *models.Order, lines []models.OrderHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for idx := range lines {
			lines[idx].OrderID = order.ID
			lines[idx].UserID = order.UserID
		}
		return tx.Create(&lines).Error
	})
}

func (r *orderRepository) GetBySerial(ctx context.Context, serial string) (models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Address").
		Where("serial = ?", serial).
		First(&order).Error
	return order, err
}

type orderHistoryRepository struct {
	db *gorm.DB
}

func NewOrderHistoryRepository(db *gorm.DB) OrderHistoryRepository {
	return &orderHistoryRepository{db: db}
}

func (r *orderHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]models.OrderHistory, error) {
	var lines []models.OrderHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

func (r *orderHistoryRepository) TotalQuantityByUser(ctx context.Context, userID uint) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderHistory{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}
