package message

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
	rg.POST("/messages", h.Send)
	rg.PATCH("/messages/:id/read", h.MarkRead)
	rg.GET("/bookings/:id/messages", h.ListByBooking)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	m, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) ListByBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	messages, err := h.service.ListByBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, messages)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case ErrMessageNotFound:
		response.Error(c, http.StatusNotFound, "MESSAGE_NOT_FOUND", "Message not found")
	case ErrSenderNotAuthorized:
		response.Error(c, http.StatusUnprocessableEntity, "SENDER_NOT_AUTHORIZED", "Sender is not a participant of this booking")
	case ErrInvalidReceiver:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_RECEIVER", "Receiver must be the other booking participant")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Message operation failed")
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
