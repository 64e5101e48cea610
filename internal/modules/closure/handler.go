package closure

import (
	"errors"
	"net/http"

	"fieldbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read-only closure views the booking UI
// needs before a user even logs in.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/closed-days", h.ListClosedDays)
	rg.GET("/public/closed-slots", h.ListClosedSlots)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/closed-days", h.CreateClosedDay)
	rg.POST("/closed-days/range", h.CreateClosedRange)
	rg.DELETE("/closed-days/:date", h.DeleteClosedDay)

	rg.GET("/closed-slots", h.ListClosedSlots)
	rg.POST("/closed-slots", h.CreateClosedSlot)
	rg.DELETE("/closed-slots/:id", h.DeleteClosedSlot)
}

func (h *Handler) ListClosedDays(c *gin.Context) {
	days, err := h.service.ListClosedDays(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load closed days")
		return
	}

	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Date)
	}
	response.Success(c, http.StatusOK, gin.H{"days": dates, "items": days})
}

func (h *Handler) CreateClosedDay(c *gin.Context) {
	var req CreateClosedDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	if err := h.service.CreateClosedDay(c.Request.Context(), req.Date, req.Reason); err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "BAD_DATE", "Invalid date")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to close day")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"date": req.Date})
}

func (h *Handler) CreateClosedRange(c *gin.Context) {
	var req CreateClosedRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	n, err := h.service.CreateClosedRange(c.Request.Context(), req.Start, req.End, req.Reason)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "BAD_DATE", "Invalid date range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to close range")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"closed": n})
}

func (h *Handler) DeleteClosedDay(c *gin.Context) {
	if err := h.service.DeleteClosedDay(c.Request.Context(), c.Param("date")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reopen day")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) ListClosedSlots(c *gin.Context) {
	slots, err := h.service.ListClosedSlots(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load closed slots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": slots})
}

func (h *Handler) CreateClosedSlot(c *gin.Context) {
	var req CreateClosedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	cs, err := h.service.CreateClosedSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "BAD_DATE", "Invalid date")
		case errors.Is(err, ErrInvalidWindow):
			response.Error(c, http.StatusBadRequest, "BAD_BODY", "Invalid closure window")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create closure")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"item": cs})
}

func (h *Handler) DeleteClosedSlot(c *gin.Context) {
	if err := h.service.DeleteClosedSlot(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete closure")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}
