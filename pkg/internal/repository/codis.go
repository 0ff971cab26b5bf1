package repository

import (
	"context"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"gorm.io/gorm"
)

type CodiRepository interface {
	GetByID(ctx context.Context, id uint) (models.Codi, error)
	// ListByOwner returns the owner's outfits ordered by id ascending so
	// repeated reads of the same state come back in the same order.
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Codi, error)
	ListAll(ctx context.Context) ([]models.Codi, error)
	SearchByText(ctx context.Context, keyword string) ([]models.Codi, error)
	Create(ctx context.Context, codi *models.Codi) error
}

type codiRepository struct {
	db *gorm.DB
}

func NewCodiRepository(db *gorm.DB) CodiRepository {
	return &codiRepository{db: db}
}

func preloadCodiGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Photos").
		Preload("Links", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("display_order ASC")
		}).
		Preload("Links.Items")
}

func filterCodiWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	probe = "%" + probe + "%"
	return tx.Where("title ILIKE ? OR description ILIKE ?", probe, probe)
}

func (r *codiRepository) GetByID(ctx context.Context, id uint) (models.Codi, error) {
	var codi models.Codi
	err := preloadCodiGeneral(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&codi).Error
	return codi, err
}

func (r *codiRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Codi, error) {
	var codis []models.Codi
	err := preloadCodiGeneral(r.db.WithContext(ctx)).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&codis).Error
	return codis, err
}

func (r *codiRepository) ListAll(ctx context.Context) ([]models.Codi, error) {
	var codis []models.Codi
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Order("id ASC").
		Find(&codis).Error
	return codis, err
}

func (r *codiRepository) SearchByText(ctx context.Context, keyword string) ([]models.Codi, error) {
	var codis []models.Codi
	err := filterCodiWithFuzzySearch(r.db.WithContext(ctx), keyword).
		Preload("Photos").
		Order("id ASC").
		Find(&codis).Error
	return codis, err
}

func (r *codiRepository) Create(ctx context.Context, codi *models.Codi) error {
	return r.db.WithContext(ctx).Create(codi).Error
}
