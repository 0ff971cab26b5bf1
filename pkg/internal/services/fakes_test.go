package services

import (
	"context"
	"sort"
	"strings"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"gorm.io/gorm"
)

// In-memory repository stand-ins. They honor the same contract as the gorm
// implementations: gorm.ErrRecordNotFound for a missing row, empty slices
// for empty result sets, and a forced err to simulate storage failures.

type fakeUserRepository struct {
	users []models.User
	err   error
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id uint) (models.User, error) {
	if r.err != nil {
		return models.User{}, r.err
	}
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetByIDWithPhoto(ctx context.Context, id uint) (models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if r.err != nil {
		return models.User{}, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) Create(ctx context.Context, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepository) Save(ctx context.Context, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	for idx := range r.users {
		if r.users[idx].ID == user.ID {
			r.users[idx] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeCodiRepository struct {
	codis []models.Codi
	err   error
}

func (r *fakeCodiRepository) GetByID(ctx context.Context, id uint) (models.Codi, error) {
	if r.err != nil {
		return models.Codi{}, r.err
	}
	for _, codi := range r.codis {
		if codi.ID == id {
			return codi, nil
		}
	}
	return models.Codi{}, gorm.ErrRecordNotFound
}

func (r *fakeCodiRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Codi, error) {
	if r.err != nil {
		return nil, r.err
	}
	codis := []models.Codi{}
	for _, codi := range r.codis {
		if codi.UserID == ownerID {
			codis = append(codis, codi)
		}
	}
	sort.Slice(codis, func(i, j int) bool { return codis[i].ID < codis[j].ID })
	return codis, nil
}

func (r *fakeCodiRepository) ListAll(ctx context.Context) ([]models.Codi, error) {
	if r.err != nil {
		return nil, r.err
	}
	codis := append([]models.Codi{}, r.codis...)
	sort.Slice(codis, func(i, j int) bool { return codis[i].ID < codis[j].ID })
	return codis, nil
}

func (r *fakeCodiRepository) SearchByText(ctx context.Context, keyword string) ([]models.Codi, error) {
	if r.err != nil {
		return nil, r.err
	}
	probe := strings.ToLower(keyword)
	codis := []models.Codi{}
	for _, codi := range r.codis {
		if strings.Contains(strings.ToLower(codi.Title), probe) ||
			strings.Contains(strings.ToLower(codi.Description), probe) {
			codis = append(codis, codi)
		}
	}
	sort.Slice(codis, func(i, j int) bool { return codis[i].ID < codis[j].ID })
	return codis, nil
}

func (r *fakeCodiRepository) Create(ctx context.Context, codi *models.Codi) error {
	if r.err != nil {
		return r.err
	}
	codi.ID = uint(len(r.codis) + 1)
	r.codis = append(r.codis, *codi)
	return nil
}

type fakeItemsRepository struct {
	items []models.Items
	links []models.CodiItem
	err   error
}

func (r *fakeItemsRepository) getByID(id uint) (models.Items, bool) {
	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Items{}, false
}

func (r *fakeItemsRepository) GetByID(ctx context.Context, id uint) (models.Items, error) {
	if r.err != nil {
		return models.Items{}, r.err
	}
	if item, ok := r.getByID(id); ok {
		return item, nil
	}
	return models.Items{}, gorm.ErrRecordNotFound
}

func (r *fakeItemsRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Items, error) {
	if r.err != nil {
		return nil, r.err
	}
	items := []models.Items{}
	for _, item := range r.items {
		for _, id := range ids {
			if item.ID == id {
				items = append(items, item)
				break
			}
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeItemsRepository) ListByCodiIDs(ctx context.Context, codiIDs []uint) ([]models.Items, error) {
	if r.err != nil {
		return nil, r.err
	}
	links := []models.CodiItem{}
	for _, link := range r.links {
		for _, id := range codiIDs {
			if link.CodiID == id {
				links = append(links, link)
				break
			}
		}
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].CodiID != links[j].CodiID {
			return links[i].CodiID < links[j].CodiID
		}
		return links[i].DisplayOrder < links[j].DisplayOrder
	})
	items := []models.Items{}
	for _, link := range links {
		if item, ok := r.getByID(link.ItemsID); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeItemsRepository) ListAll(ctx context.Context) ([]models.Items, error) {
	if r.err != nil {
		return nil, r.err
	}
	items := append([]models.Items{}, r.items...)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeItemsRepository) SearchByText(ctx context.Context, keyword string) ([]models.Items, error) {
	if r.err != nil {
		return nil, r.err
	}
	probe := strings.ToLower(keyword)
	items := []models.Items{}
	for _, item := range r.items {
		if strings.Contains(strings.ToLower(item.Name), probe) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

type fakeOrderRepository struct {
	orders []models.Order
	lines  []models.OrderHistory
	err    error
}

func (r *fakeOrderRepository) CreateWithLines(ctx context.Context, order *models.Order, lines []models.OrderHistory) error {
	if r.err != nil {
		return r.err
	}
	order.ID = uint(len(r.orders) + 1)
	r.orders = append(r.orders, *order)
	for idx := range lines {
		lines[idx].OrderID = order.ID
		lines[idx].UserID = order.UserID
		r.lines = append(r.lines, lines[idx])
	}
	return nil
}

func (r *fakeOrderRepository) GetBySerial(ctx context.Context, serial string) (models.Order, error) {
	if r.err != nil {
		return models.Order{}, r.err
	}
	for _, order := range r.orders {
		if order.Serial == serial {
			return order, nil
		}
	}
	return models.Order{}, gorm.ErrRecordNotFound
}

type fakeOrderHistoryRepository struct {
	lines []models.OrderHistory
	err   error
}

func (r *fakeOrderHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]models.OrderHistory, error) {
	if r.err != nil {
		return nil, r.err
	}
	lines := []models.OrderHistory{}
	for _, line := range r.lines {
		if line.UserID == userID {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (r *fakeOrderHistoryRepository) TotalQuantityByUser(ctx context.Context, userID uint) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	var total int
	for _, line := range r.lines {
		if line.UserID == userID {
			total += line.Quantity
		}
	}
	return total, nil
}
