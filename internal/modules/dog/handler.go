package dog

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
	rg.POST("/dogs", h.Create)
	rg.PATCH("/dogs/:id", h.Update)
	rg.GET("/owners/:id/dogs", h.ListByOwner)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	dogs, err := h.service.ListByOwner(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, dogs)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "DOG_NOT_FOUND", "Dog not found")
	case ErrOwnerNotFound:
		response.Error(c, http.StatusNotFound, "OWNER_NOT_FOUND", "Owner not found")
	case ErrInvalidSize:
		response.Error(c, http.StatusBadRequest, "INVALID_SIZE", "Unknown dog size")
	case ErrInvalidTemperament:
		response.Error(c, http.StatusBadRequest, "INVALID_TEMPERAMENT", "Unknown temperament tag")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Dog operation failed")
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
