package admin

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/config", h.GetPublicConfig)
	rg.GET("/fields", h.ListFields)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.PUT("/users/credits", h.AdjustCredits)
	rg.POST("/users/add-credits-all", h.AddCreditsToAll)
	rg.PUT("/users/password", h.SetPassword)
	rg.PUT("/users/status", h.SetStatus)
	rg.PUT("/users/rename", h.RenameUser)

	rg.GET("/config", h.GetConfig)
	rg.PUT("/config", h.UpdateConfig)

	rg.GET("/fields", h.ListFields)
	rg.POST("/fields", h.CreateField)
	rg.DELETE("/fields/:id", h.DeleteField)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": users})
}

func (h *Handler) AdjustCredits(c *gin.Context) {
	var req AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	user, err := h.service.AdjustCredits(c.Request.Context(), req.Username, req.Delta)
	if err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) AddCreditsToAll(c *gin.Context) {
	var req AddCreditsAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	if err := h.service.AddCreditsToAll(c.Request.Context(), req.Delta); err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	if err := h.service.SetPassword(c.Request.Context(), req.Username, req.NewPassword); err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	if err := h.service.SetDisabled(c.Request.Context(), req.Username, *req.Disabled); err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) RenameUser(c *gin.Context) {
	var req RenameUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	if err := h.service.RenameUser(c.Request.Context(), req.Username, req.NewUsername); err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) GetPublicConfig(c *gin.Context) {
	cfg, err := h.service.PublicConfig(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load configuration")
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.service.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load configuration")
		return
	}
	ranges, err := cfg.Ranges()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Corrupt configuration")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"slotMinutes":               cfg.SlotMinutes,
		"openRanges":                ranges,
		"maxBookingsPerUserPerDay":  cfg.MaxPerDay,
		"maxBookingsPerUserPerWeek": cfg.MaxPerWeek,
		"maxActiveBookingsPerUser":  cfg.MaxActive,
		"notesText":                 cfg.NotesText,
		"gallery":                   cfg.GalleryImages(),
	})
}

func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	if _, err := h.service.UpdateConfig(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "BAD_BODY", "Invalid configuration values")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update configuration")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) ListFields(c *gin.Context) {
	fields, err := h.service.ListFields(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list fields")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": fields})
}

func (h *Handler) CreateField(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_BODY", "Invalid request body", err.Error())
		return
	}

	f, err := h.service.CreateField(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create field")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"field": f})
}

func (h *Handler) DeleteField(c *gin.Context) {
	if err := h.service.DeleteField(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete field")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "BAD_BODY", "Invalid request")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
