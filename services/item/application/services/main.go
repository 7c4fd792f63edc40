package services

import (
	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/services/item/domain/repositories"
	"github.com/ghuser/catalog/services/item/infrastructure/persistence/memory"
	"github.com/ghuser/catalog/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the
// Application container. Without a database items are kept in process.
func New(a *app.Application) *Services {
	var repo repositories.ItemRepository
	if a.Db != nil {
		repo = postgres.NewItemRepository(a.Db, a.Publisher())
	} else {
		repo = memory.NewItemRepository()
	}
	return &Services{
		Item: NewItemService(repo, a.Metrics),
	}
}
