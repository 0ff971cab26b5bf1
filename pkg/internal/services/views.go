package services

import (
	"context"
	"time"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"github.com/samber/lo"
)

// Composer builds the user-facing read models out of the other services.
// Every view is assembled from fresh fetches and fails as a whole: a denied
// or missing sub-fetch surfaces as one error, never as a partial view.
type Composer struct {
	accounts   *Accounts
	aggregator *Aggregator
	searcher   *Searcher
	orders     *Orders
}

func NewComposer(accounts *Accounts, aggregator *Aggregator, searcher *Searcher, orders *Orders) *Composer {
	return &Composer{
		accounts:   accounts,
		aggregator: aggregator,
		searcher:   searcher,
		orders:     orders,
	}
}

type PhotoInfo struct {
	ID      uint   `json:"id"`
	Payload string `json:"payload"`
	IsCover bool   `json:"is_cover"`
}

type ProfilePage struct {
	ID       uint       `json:"id"`
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Nick     string     `json:"nick"`
	IntroMsg string     `json:"intro_msg"`
	Photo    *PhotoInfo `json:"photo"`
}

type SettingPage struct {
	ID            uint                 `json:"id"`
	Email         string               `json:"email"`
	Nick          string               `json:"nick"`
	BlueChecked   bool                 `json:"blue_checked"`
	CreatorStatus models.CreatorStatus `json:"creator_status"`
}

type CreatorApplyPage struct {
	ID            uint                 `json:"id"`
	Nick          string               `json:"nick"`
	Height        int                  `json:"height"`
	Weight        int                  `json:"weight"`
	Instagram     string               `json:"instagram"`
	Job           string               `json:"job"`
	IntroMsg      string               `json:"intro_msg"`
	CreatorStatus models.CreatorStatus `json:"creator_status"`
	AppliedAt     *time.Time           `json:"applied_at"`
}

type CreatorInfo struct {
	ID        uint       `json:"id"`
	Nick      string     `json:"nick"`
	Height    int        `json:"height"`
	Weight    int        `json:"weight"`
	Instagram string     `json:"instagram"`
	Job       string     `json:"job"`
	IntroMsg  string     `json:"intro_msg"`
	Photo     *PhotoInfo `json:"photo"`
}

type CodiEntry struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Photos      []PhotoInfo `json:"photos"`
}

type ItemEntry struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	BrandName string     `json:"brand_name"`
	Price     int64      `json:"price"`
	Photo     *PhotoInfo `json:"photo"`
}

type CreatorView struct {
	Creator CreatorInfo `json:"creator"`
	Codis   []CodiEntry `json:"codis"`
	Items   []ItemEntry `json:"items"`
}

type UserMyPage struct {
	Profile              ProfilePage `json:"profile"`
	TotalOrderedQuantity int         `json:"total_ordered_quantity"`
}

type CreatorMyPage struct {
	Creator              CreatorInfo `json:"creator"`
	TotalOrderedQuantity int         `json:"total_ordered_quantity"`
	Codis                []CodiEntry `json:"codis"`
	Items                []ItemEntry `json:"items"`
}

type SearchPage struct {
	Codis []CodiEntry `json:"codis"`
	Items []ItemEntry `json:"items"`
}

func newPhotoInfo(photo models.Photo) PhotoInfo {
	return PhotoInfo{
		ID:      photo.ID,
		Payload: photo.Payload,
		IsCover: photo.IsCover,
	}
}

func newProfilePhoto(user models.User) *PhotoInfo {
	if user.Photo == nil {
		return nil
	}
	return lo.ToPtr(newPhotoInfo(*user.Photo))
}

func newProfilePage(user models.User) ProfilePage {
	return ProfilePage{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Nick:     user.Nick,
		IntroMsg: user.IntroMsg,
		Photo:    newProfilePhoto(user),
	}
}

func newCreatorInfo(user models.User) CreatorInfo {
	return CreatorInfo{
		ID:        user.ID,
		Nick:      user.Nick,
		Height:    user.Height,
		Weight:    user.Weight,
		Instagram: user.Instagram,
		Job:       user.Job,
		IntroMsg:  user.IntroMsg,
		Photo:     newProfilePhoto(user),
	}
}

func newCodiEntry(codi models.Codi) CodiEntry {
	return CodiEntry{
		ID:          codi.ID,
		Title:       codi.Title,
		Description: codi.Description,
		Photos: lo.Map(codi.Photos, func(photo models.Photo, index int) PhotoInfo {
			return newPhotoInfo(photo)
		}),
	}
}

func newItemEntry(item models.Items) ItemEntry {
	entry := ItemEntry{
		ID:        item.ID,
		Name:      item.Name,
		BrandName: item.BrandName,
		Price:     item.Price,
	}
	if photo, ok := lo.Find(item.Photos, func(photo models.Photo) bool {
		return photo.IsCover
	}); ok {
		entry.Photo = lo.ToPtr(newPhotoInfo(photo))
	} else if len(item.Photos) > 0 {
		entry.Photo = lo.ToPtr(newPhotoInfo(item.Photos[0]))
	}
	return entry
}

func newCodiEntries(codis []models.Codi) []CodiEntry {
	return lo.Map(codis, func(codi models.Codi, index int) CodiEntry {
		return newCodiEntry(codi)
	})
}

func newItemEntries(items []models.Items) []ItemEntry {
	return lo.Map(items, func(item models.Items, index int) ItemEntry {
		return newItemEntry(item)
	})
}

func (s *Composer) ProfilePage(ctx context.Context, userID uint) (ProfilePage, error) {
	user, err := s.accounts.GetAuthenticatedUser(ctx, userID)
	if err != nil {
		return ProfilePage{}, err
	}
	return newProfilePage(user), nil
}

func (s *Composer) SettingPage(ctx context.Context, userID uint) (SettingPage, error) {
	user, err := s.accounts.GetAuthenticatedUser(ctx, userID)
	if err != nil {
		return SettingPage{}, err
	}
	return SettingPage{
		ID:            user.ID,
		Email:         user.Email,
		Nick:          user.Nick,
		BlueChecked:   user.BlueChecked,
		CreatorStatus: user.CreatorStatus,
	}, nil
}

func (s *Composer) CreatorApplyPage(ctx context.Context, userID uint) (CreatorApplyPage, error) {
	user, err := s.accounts.GetAuthenticatedUser(ctx, userID)
	if err != nil {
		return CreatorApplyPage{}, err
	}
	return CreatorApplyPage{
		ID:            user.ID,
		Nick:          user.Nick,
		Height:        user.Height,
		Weight:        user.Weight,
		Instagram:     user.Instagram,
		Job:           user.Job,
		IntroMsg:      user.IntroMsg,
		CreatorStatus: user.CreatorStatus,
		AppliedAt:     user.AppliedAt,
	}, nil
}

// CreatorView is the public page of a verified creator: profile, outfits
// and the deduplicated union of items those outfits reference.
func (s *Composer) CreatorView(ctx context.Context, targetID uint) (CreatorView, error) {
	catalog, err := s.aggregator.CreatorCatalog(ctx, targetID)
	if err != nil {
		return CreatorView{}, err
	}
	return CreatorView{
		Creator: newCreatorInfo(catalog.Creator),
		Codis:   newCodiEntries(catalog.Codis),
		Items:   newItemEntries(catalog.Items),
	}, nil
}

func (s *Composer) UserMyPage(ctx context.Context, userID uint) (UserMyPage, error) {
	user, err := s.accounts.GetAuthenticatedUser(ctx, userID)
	if err != nil {
		return UserMyPage{}, err
	}
	total, err := s.orders.TotalOrderedQuantity(ctx, userID)
	if err != nil {
		return UserMyPage{}, err
	}
	return UserMyPage{
		Profile:              newProfilePage(user),
		TotalOrderedQuantity: total,
	}, nil
}

func (s *Composer) CreatorMyPage(ctx context.Context, userID uint) (CreatorMyPage, error) {
	catalog, err := s.aggregator.CreatorCatalog(ctx, userID)
	if err != nil {
		return CreatorMyPage{}, err
	}
	total, err := s.orders.TotalOrderedQuantity(ctx, userID)
	if err != nil {
		return CreatorMyPage{}, err
	}
	return CreatorMyPage{
		Creator:              newCreatorInfo(catalog.Creator),
		TotalOrderedQuantity: total,
		Codis:                newCodiEntries(catalog.Codis),
		Items:                newItemEntries(catalog.Items),
	}, nil
}

func (s *Composer) SearchPage(ctx context.Context, keyword string) (SearchPage, error) {
	codis, items, err := s.searcher.Search(ctx, keyword)
	if err != nil {
		return SearchPage{}, err
	}
	return SearchPage{
		Codis: newCodiEntries(codis),
		Items: newItemEntries(items),
	}, nil
}
