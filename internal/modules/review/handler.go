package review

import (
	"net/http"
	"strconv"

	"petsitter/internal/pkg/response"
	"petsitter/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
	rg.GET("/users/:id/reviews", h.ListByReviewee)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	rv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) ListByReviewee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	reviews, err := h.service.ListByReviewee(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrInvalidRating:
		response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case ErrReviewerNotFound:
		response.Error(c, http.StatusNotFound, "REVIEWER_NOT_FOUND", "Reviewer not found")
	case ErrRevieweeNotFound:
		response.Error(c, http.StatusNotFound, "REVIEWEE_NOT_FOUND", "Reviewee not found")
	case ErrBookingNotCompleted:
		response.Error(c, http.StatusConflict, "BOOKING_NOT_COMPLETED", "Can only review completed bookings")
	case ErrDuplicateReview:
		response.Error(c, http.StatusConflict, "DUPLICATE_REVIEW", "Review already exists for this booking")
	case ErrReviewerNotParticipant:
		response.Error(c, http.StatusUnprocessableEntity, "REVIEWER_NOT_PARTICIPANT", "Only booking participants can leave reviews")
	case ErrInvalidReviewee:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_REVIEWEE", "Reviewee must be the other booking participant")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Review operation failed")
	}
}
