package booking

import (
	"errors"
	"net/http"

	"fieldbook/internal/middleware"
	"fieldbook/internal/pkg/response"
	"fieldbook/internal/slot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.ListReservations)
	rg.POST("/reservations", h.CreateReservation)
	rg.DELETE("/reservations/:id", h.DeleteReservation)
	rg.GET("/availability", h.Availability)
}

func (h *Handler) ListReservations(c *gin.Context) {
	date := c.Query("date")
	if !slot.ValidDate(date) {
		response.Error(c, http.StatusBadRequest, "BAD_DATE", "Expected date=YYYY-MM-DD")
		return
	}

	items, err := h.service.ListForDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), middleware.Username(c), middleware.IsAdmin(c), req)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) writeCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "BAD_BODY", "Invalid field, date or time")
	case errors.Is(err, ErrDayClosed):
		response.Error(c, http.StatusConflict, "DAY_CLOSED", "The selected day is closed")
	case errors.Is(err, ErrFieldClosed):
		response.Error(c, http.StatusConflict, "FIELD_CLOSED_TIME", "The field is closed at the selected time")
	case errors.Is(err, ErrNoCredits):
		response.Error(c, http.StatusPaymentRequired, "NO_CREDITS", "No credits left")
	case errors.Is(err, ErrMaxPerDay):
		response.Error(c, http.StatusConflict, "MAX_PER_DAY_LIMIT", "Daily booking limit reached")
	case errors.Is(err, ErrMaxPerWeek):
		response.Error(c, http.StatusConflict, "MAX_PER_WEEK_LIMIT", "Weekly booking limit reached")
	case errors.Is(err, ErrActiveLimit):
		response.Error(c, http.StatusConflict, "ACTIVE_BOOKING_LIMIT", "Active booking limit reached")
	case errors.Is(err, ErrSlotTaken):
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", "The slot is already taken")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
	}
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	err := h.service.Cancel(c.Request.Context(), middleware.Username(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotAllowed) {
			response.Error(c, http.StatusForbidden, "NOT_ALLOWED", "Only the owner or an admin can cancel")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Availability(c *gin.Context) {
	fieldID := c.Query("fieldId")
	date := c.Query("date")

	slots, err := h.service.Availability(c.Request.Context(), fieldID, date)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "BAD_DATE", "Expected fieldId and date=YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}
