package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// GetCategoriesHandler handles GET /categories and GET /categories/{categoryId}.
type GetCategoriesHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Writer
}

// NewGetCategoriesHandler returns a GetCategoriesHandler backed by the given services.
func NewGetCategoriesHandler(svc *appsvcs.Services, errs *errhttp.Writer) *GetCategoriesHandler {
	return &GetCategoriesHandler{svc: svc, errs: errs}
}

// List returns every category.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		CategoryResponse
//	@Failure	500	{object}	httpx.ErrorsResponse
//	@Router		/categories [get]
func (h *GetCategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Category.List(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toResponse(c)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Get returns one category.
//
//	@Summary	Get category
//	@Tags		categories
//	@Produce	json
//	@Param		categoryId	path		string	true	"Category ID"
//	@Success	200			{object}	CategoryResponse
//	@Failure	404			{object}	httpx.MessageResponse
//	@Failure	500			{object}	httpx.ErrorsResponse
//	@Router		/categories/{categoryId} [get]
func (h *GetCategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.svc.Category.Get(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(category))
}
