package booking

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
	rg.POST("/bookings", h.CreateBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/owners/:id/bookings", h.ListByOwner)
	rg.GET("/sitters/:id/bookings", h.ListBySitter)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListByOwner(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) ListBySitter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListBySitter(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case ErrInvalidServiceType:
		response.Error(c, http.StatusBadRequest, "INVALID_SERVICE_TYPE", "Unknown service type")
	case ErrOwnerNotFound:
		response.Error(c, http.StatusNotFound, "OWNER_NOT_FOUND", "Owner not found")
	case ErrSitterNotFound:
		response.Error(c, http.StatusNotFound, "SITTER_NOT_FOUND", "Sitter not found")
	case ErrDogNotFound:
		response.Error(c, http.StatusNotFound, "DOG_NOT_FOUND", "Dog not found")
	case ErrListingNotFound:
		response.Error(c, http.StatusNotFound, "LISTING_NOT_FOUND", "Listing not found")
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case ErrDogOwnershipMismatch:
		response.Error(c, http.StatusUnprocessableEntity, "DOG_OWNERSHIP_MISMATCH", "Dog does not belong to the specified owner")
	case ErrListingOwnershipMismatch:
		response.Error(c, http.StatusUnprocessableEntity, "LISTING_OWNERSHIP_MISMATCH", "Listing does not belong to the specified sitter")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Status transition is not allowed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
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
