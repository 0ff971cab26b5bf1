package services

import (
	"context"
	"fmt"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"github.com/fitlogue/fitlogue/pkg/internal/repository"
)

// Searcher answers free-text catalog search across outfits and items as two
// independent result sets.
type Searcher struct {
	codis repository.CodiRepository
	items repository.ItemsRepository
}

func NewSearcher(codis repository.CodiRepository, items repository.ItemsRepository) *Searcher {
	return &Searcher{codis: codis, items: items}
}

// Search treats an empty keyword as "no filter" and returns the whole
// catalog. A non-empty keyword matches case-insensitively as a substring of
// outfit titles/descriptions and item names; a match on one side never pulls
// in related rows from the other. Results follow storage order, unranked.
func (s *Searcher) Search(ctx context.Context, keyword string) ([]models.Codi, []models.Items, error) {
	var codis []models.Codi
	var items []models.Items
	var err error

	if len(keyword) == 0 {
		if codis, err = s.codis.ListAll(ctx); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if items, err = s.items.ListAll(ctx); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return codis, items, nil
	}

	if codis, err = s.codis.SearchByText(ctx, keyword); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if items, err = s.items.SearchByText(ctx, keyword); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return codis, items, nil
}
