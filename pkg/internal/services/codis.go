package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"github.com/fitlogue/fitlogue/pkg/internal/repository"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Codis struct {
	users repository.UserRepository
	codis repository.CodiRepository
	items repository.ItemsRepository
}

func NewCodis(
	users repository.UserRepository,
	codis repository.CodiRepository,
	items repository.ItemsRepository,
) *Codis {
	return &Codis{users: users, codis: codis, items: items}
}

func (s *Codis) Get(ctx context.Context, id uint) (models.Codi, error) {
	codi, err := s.codis.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return codi, fmt.Errorf("%w: codi was not found", ErrNotFound)
	} else if err != nil {
		return codi, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return codi, nil
}

type CodiItemLink struct {
	ItemsID      uint
	DisplayOrder int
}

type CodiDraft struct {
	Title       string
	Description string
	Photos      []string
	Links       []CodiItemLink
}

// Create publishes an outfit for a verified creator, linking the referenced
// items in the given display order.
func (s *Codis) Create(ctx context.Context, userID uint, draft CodiDraft) (models.Codi, error) {
	var codi models.Codi

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return codi, fmt.Errorf("%w: not authenticated", ErrAccessDenied)
	} else if err != nil {
		return codi, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !user.BlueChecked {
		return codi, fmt.Errorf("%w: only verified creators can publish codis", ErrAccessDenied)
	}

	if len(draft.Links) > 0 {
		itemIDs := lo.Uniq(lo.Map(draft.Links, func(link CodiItemLink, index int) uint {
			return link.ItemsID
		}))
		items, err := s.items.ListByIDs(ctx, itemIDs)
		if err != nil {
			return codi, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if len(items) != len(itemIDs) {
			return codi, fmt.Errorf("%w: some linked items do not exist", ErrNotFound)
		}
	}

	codi = models.Codi{
		Title:       draft.Title,
		Description: draft.Description,
		Language:    DetectLanguage(draft.Description),
		UserID:      user.ID,
		Photos: lo.Map(draft.Photos, func(payload string, index int) models.Photo {
			return models.Photo{
				Usage:   models.PhotoUsageCodi,
				Payload: payload,
				IsCover: index == 0,
			}
		}),
		Links: lo.Map(draft.Links, func(link CodiItemLink, index int) models.CodiItem {
			return models.CodiItem{
				ItemsID:      link.ItemsID,
				DisplayOrder: link.DisplayOrder,
			}
		}),
	}

	if err := s.codis.Create(ctx, &codi); err != nil {
		return codi, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return codi, nil
}
