package handlers

import (
	"net/http"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// PostCategoryHandler handles POST /categories requests.
type PostCategoryHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Writer
}

// NewPostCategoryHandler returns a PostCategoryHandler backed by the given services.
func NewPostCategoryHandler(svc *appsvcs.Services, errs *errhttp.Writer) *PostCategoryHandler {
	return &PostCategoryHandler{svc: svc, errs: errs}
}

// Execute creates a new category.
//
//	@Summary		Create category
//	@Description	Creates a category. Names are unique and case-sensitive.
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCategoryRequest	true	"Category creation request"
//	@Success		201		{object}	CategoryResponse
//	@Failure		400		{object}	httpx.ErrorsResponse
//	@Failure		409		{object}	httpx.MessageResponse
//	@Failure		500		{object}	httpx.ErrorsResponse
//	@Router			/categories [post]
func (h *PostCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Category.Create(r.Context(), req.Name)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(category))
}
