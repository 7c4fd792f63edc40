package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/auth"
	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// GetItemsHandler handles GET /items and GET /items/{itemId}.
type GetItemsHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Writer
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services, errs *errhttp.Writer) *GetItemsHandler {
	return &GetItemsHandler{svc: svc, errs: errs}
}

// List returns the caller's items, newest first.
//
//	@Summary	List own items
//	@Tags		items
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		ItemResponse
//	@Failure	401	{object}	httpx.MessageResponse
//	@Failure	500	{object}	httpx.ErrorsResponse
//	@Router		/items [get]
func (h *GetItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	items, err := h.svc.Item.List(r.Context(), id.ID)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = toResponse(it)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Get returns one of the caller's items. Items owned by someone else are
// reported exactly like missing ones.
//
//	@Summary	Get own item
//	@Tags		items
//	@Produce	json
//	@Security	BearerAuth
//	@Param		itemId	path		string	true	"Item ID"
//	@Success	200		{object}	ItemResponse
//	@Failure	401		{object}	httpx.MessageResponse
//	@Failure	404		{object}	httpx.MessageResponse
//	@Failure	500		{object}	httpx.ErrorsResponse
//	@Router		/items/{itemId} [get]
func (h *GetItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	item, err := h.svc.Item.Get(r.Context(), id.ID, chi.URLParam(r, "itemId"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(item))
}
