package repository

import (
	"context"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"gorm.io/gorm"
)

type ItemsRepository interface {
	GetByID(ctx context.Context, id uint) (models.Items, error)
	ListByIDs(ctx context.Context, ids []uint) ([]models.Items, error)
	// ListByCodiIDs resolves every item linked from the given outfits in one
	// batched query. An item linked from several outfits in the set shows up
	// once per link; deduplication is the caller's contract.
	ListByCodiIDs(ctx context.Context, codiIDs []uint) ([]models.Items, error)
	ListAll(ctx context.Context) ([]models.Items, error)
	SearchByText(ctx context.Context, keyword string) ([]models.Items, error)
}

type itemsRepository struct {
	db *gorm.DB
}

func NewItemsRepository(db *gorm.DB) ItemsRepository {
	return &itemsRepository{db: db}
}

func (r *itemsRepository) GetByID(ctx context.Context, id uint) (models.Items, error) {
	var item models.Items
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("id = ?", id).
		First(&item).Error
	return item, err
}

func (r *itemsRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Items, error) {
	var items []models.Items
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *itemsRepository) ListByCodiIDs(ctx context.Context, codiIDs []uint) ([]models.Items, error) {
	var items []models.Items
	links := resolveTable(r.db, "codi_items")
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Joins(joinCodiItems(r.db)).
		Where(links+".codi_id IN ?", codiIDs).
		Order(links + ".codi_id ASC, " + links + ".display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *itemsRepository) ListAll(ctx context.Context) ([]models.Items, error) {
	var items []models.Items
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *itemsRepository) SearchByText(ctx context.Context, keyword string) ([]models.Items, error) {
	var items []models.Items
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("name ILIKE ?", "%"+keyword+"%").
		Order("id ASC").
		Find(&items).Error
	return items, err
}
