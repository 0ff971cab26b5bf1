package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComposerFixture() *Composer {
	users := &fakeUserRepository{users: []models.User{
		{
			BaseModel: models.BaseModel{ID: 1}, Email: "creator@fitlogue.dev", Nick: "mina",
			BlueChecked: true, CreatorStatus: models.CreatorStatusApproved,
			Photo: &models.Photo{BaseModel: models.BaseModel{ID: 100}, Usage: models.PhotoUsageProfile, Payload: "cGhvdG8="},
		},
		{BaseModel: models.BaseModel{ID: 2}, Email: "fan@fitlogue.dev", Nick: "jun"},
	}}
	codis := &fakeCodiRepository{codis: []models.Codi{
		{BaseModel: models.BaseModel{ID: 1}, UserID: 1, Title: "Spring layers"},
		{BaseModel: models.BaseModel{ID: 2}, UserID: 1, Title: "Rainy day"},
	}}
	items := &fakeItemsRepository{
		items: []models.Items{
			{BaseModel: models.BaseModel{ID: 10}, Name: "Blue Jacket", Photos: []models.Photo{
				{BaseModel: models.BaseModel{ID: 200}, Usage: models.PhotoUsageItem, IsCover: true},
			}},
			{BaseModel: models.BaseModel{ID: 11}, Name: "Wool Scarf"},
		},
		links: []models.CodiItem{
			{CodiID: 1, ItemsID: 10},
			{CodiID: 2, ItemsID: 10},
			{CodiID: 2, ItemsID: 11, DisplayOrder: 1},
		},
	}
	histories := &fakeOrderHistoryRepository{lines: []models.OrderHistory{
		{UserID: 1, Quantity: 2},
		{UserID: 1, Quantity: 5},
		{UserID: 2, Quantity: 1},
	}}

	accounts := NewAccounts(users)
	aggregator := NewAggregator(users, codis, items)
	searcher := NewSearcher(codis, items)
	orders := NewOrders(&fakeOrderRepository{}, histories, items)

	return NewComposer(accounts, aggregator, searcher, orders)
}

func TestProfilePageCarriesPhoto(t *testing.T) {
	composer := newComposerFixture()

	view, err := composer.ProfilePage(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "mina", view.Nick)
	require.NotNil(t, view.Photo)
	assert.Equal(t, "cGhvdG8=", view.Photo.Payload)
}

func TestProfilePageFailsForUnknownCaller(t *testing.T) {
	composer := newComposerFixture()

	_, err := composer.ProfilePage(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestUserMyPageIncludesOrderSummary(t *testing.T) {
	composer := newComposerFixture()

	view, err := composer.UserMyPage(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 7, view.TotalOrderedQuantity)
	assert.Equal(t, "mina", view.Profile.Nick)
}

func TestCreatorMyPageMergesCatalogAndSummary(t *testing.T) {
	composer := newComposerFixture()

	view, err := composer.CreatorMyPage(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 7, view.TotalOrderedQuantity)
	assert.Len(t, view.Codis, 2)

	ids := lo.Map(view.Items, func(item ItemEntry, index int) uint {
		return item.ID
	})
	assert.Equal(t, []uint{10, 11}, ids)
}

func TestCreatorMyPageDeniedForPlainUser(t *testing.T) {
	composer := newComposerFixture()

	_, err := composer.CreatorMyPage(context.Background(), 2)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestCreatorViewDeniedForUnverifiedTarget(t *testing.T) {
	composer := newComposerFixture()

	view, err := composer.CreatorView(context.Background(), 2)
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.Empty(t, view.Codis)
	assert.Empty(t, view.Items)
}

func TestCreatorViewPicksItemCoverPhoto(t *testing.T) {
	composer := newComposerFixture()

	view, err := composer.CreatorView(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	require.NotNil(t, view.Items[0].Photo)
	assert.True(t, view.Items[0].Photo.IsCover)
	assert.Nil(t, view.Items[1].Photo)
}

func TestSearchPageMapsBothCollections(t *testing.T) {
	composer := newComposerFixture()

	view, err := composer.SearchPage(context.Background(), "")
	require.NoError(t, err)

	assert.Len(t, view.Codis, 2)
	assert.Len(t, view.Items, 2)
}
