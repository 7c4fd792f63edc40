package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/services/category/application/handlers"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// CategoryRoutes registers the category endpoints. Categories are public.
func CategoryRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), a.Errors)
}

// Mount registers the category endpoints on r for an already wired container.
func Mount(r chi.Router, svcs *appsvcs.Services, errs *errhttp.Writer) {
	get := handlers.NewGetCategoriesHandler(svcs, errs)
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", handlers.NewPostCategoryHandler(svcs, errs).Execute)
		r.Get("/", get.List)
		r.Get("/{categoryId}", get.Get)
	})
}
