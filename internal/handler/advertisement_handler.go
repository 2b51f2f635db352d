package handler

import (
	"net/http"

	"adboard/internal/middleware"
	"adboard/internal/model"
	"adboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdvertisementHandler handles advertisement requests
type AdvertisementHandler struct {
	service service.AdvertisementService
	log     zerolog.Logger
}

// NewAdvertisementHandler creates a new AdvertisementHandler
func NewAdvertisementHandler(s service.AdvertisementService, log zerolog.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{service: s, log: log}
}

func (h *AdvertisementHandler) GetAdvertisement(c *gin.Context) {
	id, err := getPathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, middleware.NotFoundBody)
		return
	}

	ad, err := h.service.GetAdvertisement(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.AdvertisementResponse{Header: ad.Header, OwnerID: ad.OwnerID})
}

func (h *AdvertisementHandler) CreateAdvertisement(c *gin.Context) {
	var req model.CreateAdvertisementRequest
	if !bindJSON(c, &req) {
		return
	}

	ad, err := h.service.CreateAdvertisement(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info().Int64("advertisement_id", ad.ID).Int64("owner_id", ad.OwnerID).Msg("advertisement created")
	c.JSON(http.StatusCreated, model.CreateAdvertisementResponse{ID: ad.ID, Header: ad.Header})
}

func (h *AdvertisementHandler) UpdateAdvertisement(c *gin.Context) {
	id, err := getPathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, middleware.NotFoundBody)
		return
	}

	var req model.UpdateAdvertisementRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.UpdateAdvertisement(c.Request.Context(), id, req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: model.StatusSuccess})
}

func (h *AdvertisementHandler) DeleteAdvertisement(c *gin.Context) {
	id, err := getPathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, middleware.NotFoundBody)
		return
	}

	if err := h.service.DeleteAdvertisement(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: model.StatusSuccess})
}

// RegisterAdvertisementRoutes registers advertisement routes
func (h *AdvertisementHandler) RegisterAdvertisementRoutes(rg *gin.RouterGroup, idGuard gin.HandlerFunc) {
	adGroup := rg.Group("/advertisements")
	{
		adGroup.POST("/", h.CreateAdvertisement)
		adGroup.GET("/:id", idGuard, h.GetAdvertisement)
		adGroup.PATCH("/:id", idGuard, h.UpdateAdvertisement)
		adGroup.DELETE("/:id", idGuard, h.DeleteAdvertisement)
	}
}
