package services

import (
	"github.com/fitlogue/fitlogue/pkg/internal/repository"
	"gorm.io/gorm"
)

// Set bundles every service the HTTP boundary consumes.
type Set struct {
	Accounts   *Accounts
	Aggregator *Aggregator
	Searcher   *Searcher
	Orders     *Orders
	Codis      *Codis
	Composer   *Composer
}

func NewSet(db *gorm.DB) *Set {
	users := repository.NewUserRepository(db)
	codis := repository.NewCodiRepository(db)
	items := repository.NewItemsRepository(db)
	orders := repository.NewOrderRepository(db)
	histories := repository.NewOrderHistoryRepository(db)

	accounts := NewAccounts(users)
	aggregator := NewAggregator(users, codis, items)
	searcher := NewSearcher(codis, items)
	orderSrv := NewOrders(orders, histories, items)

	return &Set{
		Accounts:   accounts,
		Aggregator: aggregator,
		Searcher:   searcher,
		Orders:     orderSrv,
		Codis:      NewCodis(users, codis, items),
		Composer:   NewComposer(accounts, aggregator, searcher, orderSrv),
	}
}
