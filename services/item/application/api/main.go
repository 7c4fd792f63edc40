package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/pkg/auth"
	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/services/item/application/handlers"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// ItemRoutes registers the item endpoints. Every item route requires an
// authenticated caller.
func ItemRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), a.Errors, a.Authenticate)
}

// Mount registers the item endpoints on r behind authn.
func Mount(r chi.Router, svcs *appsvcs.Services, errs *errhttp.Writer, authn auth.Middleware) {
	get := handlers.NewGetItemsHandler(svcs, errs)
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs, errs).Execute)
			r.Get("/", get.List)
			r.Get("/{itemId}", get.Get)
			r.Put("/{itemId}", handlers.NewPutItemHandler(svcs, errs).Execute)
			r.Delete("/{itemId}", handlers.NewDeleteItemHandler(svcs, errs).Execute)
		})
	})
}
