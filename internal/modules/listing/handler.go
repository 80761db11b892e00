package listing

import (
	"net/http"
	"strconv"

	"petsitter/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/listings", h.Create)
	rg.PATCH("/listings/:id", h.Update)
	rg.GET("/listings/search", h.Search)
	rg.GET("/sitters/:id/listings", h.ListBySitter)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, l)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search filters")
		return
	}

	listings, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, listings)
}

func (h *Handler) ListBySitter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	listings, err := h.service.ListBySitter(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, listings)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "LISTING_NOT_FOUND", "Listing not found")
	case ErrSitterNotFound:
		response.Error(c, http.StatusNotFound, "SITTER_NOT_FOUND", "Sitter not found")
	case ErrNotASitter:
		response.Error(c, http.StatusForbidden, "NOT_A_SITTER", "User does not have sitter role permissions")
	case ErrInvalidService:
		response.Error(c, http.StatusBadRequest, "INVALID_SERVICE_TYPE", "Unknown service type")
	case ErrInvalidSize:
		response.Error(c, http.StatusBadRequest, "INVALID_SIZE", "Unknown dog size")
	case ErrInvalidPrice:
		response.Error(c, http.StatusBadRequest, "INVALID_PRICE", "Prices must be positive")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Listing operation failed")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
