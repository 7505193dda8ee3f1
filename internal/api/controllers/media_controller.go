package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

func (m *MediaController) FetchUnsplashImage(c *gin.Context) {
	var req request_models.FetchImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	resp, err := m.mediaService.FetchImage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Image fetched successfully")
}

func (m *MediaController) GenerateStaticMap(c *gin.Context) {
	var req request_models.StaticMapRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripID == "" || req.LocationName == "" {
		utils.RespondError(c, http.StatusBadRequest, "TripID and LocationName are required")
		return
	}

	resp, err := m.mediaService.GenerateStaticMap(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Static map generated successfully")
}
