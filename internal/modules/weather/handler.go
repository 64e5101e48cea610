package weather

import (
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/weather", h.GetForecast)
}

func (h *Handler) GetForecast(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Forecast(c.Request.Context()))
}
