package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/auth"
	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// PutItemHandler handles PUT /items/{itemId} requests.
type PutItemHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Writer
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *PutItemHandler {
	return &PutItemHandler{svc: svc, errs: errs}
}

// Execute replaces the caller's item.
//
//	@Summary		Replace item
//	@Description	Replaces every field of an item owned by the caller. The owner never changes.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			itemId	path		string		true	"Item ID"
//	@Param			request	body		ItemRequest	true	"Replacement item"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorsResponse
//	@Failure		401		{object}	httpx.MessageResponse
//	@Failure		404		{object}	httpx.MessageResponse
//	@Failure		409		{object}	httpx.MessageResponse
//	@Failure		500		{object}	httpx.ErrorsResponse
//	@Router			/items/{itemId} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id.ID, chi.URLParam(r, "itemId"), req.fields())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(item))
}
