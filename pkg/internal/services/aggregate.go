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

// Aggregator assembles a creator's outfits together with the distinct set of
// items those outfits reference.
type Aggregator struct {
	users repository.UserRepository
	codis repository.CodiRepository
	items repository.ItemsRepository
}

func NewAggregator(
	users repository.UserRepository,
	codis repository.CodiRepository,
	items repository.ItemsRepository,
) *Aggregator {
	return &Aggregator{users: users, codis: codis, items: items}
}

type CreatorCatalog struct {
	Creator models.User
	Codis   []models.Codi
	Items   []models.Items
}

// CreatorCatalog fails with the access-denied class unless the target
// account exists and carries the verified-creator mark. Items referenced by
// several outfits appear exactly once, in first-seen order; a creator with
// no outfits yields empty lists.
func (s *Aggregator) CreatorCatalog(ctx context.Context, userID uint) (CreatorCatalog, error) {
	var catalog CreatorCatalog

	user, err := s.users.GetByIDWithPhoto(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog, fmt.Errorf("%w: not a verified creator", ErrAccessDenied)
	} else if err != nil {
		return catalog, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !user.BlueChecked {
		return catalog, fmt.Errorf("%w: not a verified creator", ErrAccessDenied)
	}

	codis, err := s.codis.ListByOwner(ctx, user.ID)
	if err != nil {
		return catalog, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var items []models.Items
	if len(codis) > 0 {
		codiIDs := lo.Map(codis, func(item models.Codi, index int) uint {
			return item.ID
		})
		items, err = s.items.ListByCodiIDs(ctx, codiIDs)
		if err != nil {
			return catalog, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	catalog.Creator = user
	catalog.Codis = codis
	catalog.Items = lo.UniqBy(items, func(item models.Items) uint {
		return item.ID
	})

	return catalog, nil
}
