package repository

import (
	"context"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"gorm.io/gorm"
)

// UserRepository is the storage capability for accounts. Implementations
// return gorm.ErrRecordNotFound for a missing row and any other error only
// for infrastructure failures.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (models.User, error)
	GetByIDWithPhoto(ctx context.Context, id uint) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return user, err
}

func (r *userRepository) GetByIDWithPhoto(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Photo", "usage = ?", models.PhotoUsageProfile).
		Where("id = ?", id).
		First(&user).Error
	return user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
