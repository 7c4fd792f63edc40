package services

import (
	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/services/category/domain/repositories"
	"github.com/ghuser/catalog/services/category/infrastructure/persistence/memory"
	"github.com/ghuser/catalog/services/category/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Category *CategoryService
}

// New wires the category services from the Application container. Without a
// database (STORE_DRIVER=memory) categories are kept in process.
func New(a *app.Application) *Services {
	var repo repositories.CategoryRepository
	if a.Db != nil {
		repo = postgres.NewCategoryRepository(a.Db, a.Publisher())
	} else {
		repo = memory.NewCategoryRepository()
	}
	return &Services{
		Category: NewCategoryService(repo, a.Metrics),
	}
}
