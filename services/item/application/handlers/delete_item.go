package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/auth"
	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// DeleteItemHandler handles DELETE /items/{itemId} requests.
type DeleteItemHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Writer
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, errs: errs}
}

// Execute hard-deletes the caller's item and responds with an empty object.
//
//	@Summary	Delete item
//	@Tags		items
//	@Produce	json
//	@Security	BearerAuth
//	@Param		itemId	path		string	true	"Item ID"
//	@Success	200		{object}	object
//	@Failure	401		{object}	httpx.MessageResponse
//	@Failure	404		{object}	httpx.MessageResponse
//	@Failure	500		{object}	httpx.ErrorsResponse
//	@Router		/items/{itemId} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id.ID, chi.URLParam(r, "itemId")); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, struct{}{})
}
