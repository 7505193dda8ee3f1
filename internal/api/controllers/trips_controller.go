package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a trip itinerary
// @Description Create a new trip from the planning form and generate its day-by-day itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip planning form"
// @Success 200 {object} response_models.GenerateItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /trips/generate-itinerary [post]
func (t *TripsController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	// Generation works logged-out; an authenticated caller gets the trip
	// attached to their account.
	var accountId *uuid.UUID
	if userId := c.GetString("user_id"); userId != "" {
		if parsed, err := uuid.Parse(userId); err == nil {
			accountId = &parsed
		}
	}

	resp, err := t.tripService.GenerateItinerary(c.Request.Context(), req, accountId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// RefineItinerary godoc
// @Summary Refine an existing itinerary
// @Description Apply a free-text instruction to the trip's current itinerary and store the result as a new version
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.RefineItineraryRequest true "Trip ID and refinement instruction"
// @Success 200 {object} response_models.RefineItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/refine-itinerary [post]
func (t *TripsController) RefineItinerary(c *gin.Context) {
	var req request_models.RefineItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripID == "" || req.DirectionText == "" {
		utils.RespondError(c, http.StatusBadRequest, "TripID and DirectionText are required")
		return
	}

	resp, err := t.tripService.RefineItinerary(c.Request.Context(), req.TripID, req.DirectionText)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary refined successfully")
}

// RestoreVersion godoc
// @Summary Restore a historical itinerary version
// @Description Copy a stored version's itinerary into a new version and make it the trip's live itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.RestoreVersionRequest true "Trip ID and target version"
// @Success 200 {object} response_models.RestoreVersionResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/restore-version [post]
func (t *TripsController) RestoreVersion(c *gin.Context) {
	var req request_models.RestoreVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripID == "" || req.TargetVersion < 1 {
		utils.RespondError(c, http.StatusBadRequest, "TripID and TargetVersion are required")
		return
	}

	resp, err := t.tripService.RestoreVersion(c.Request.Context(), req.TripID, req.TargetVersion)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Version restored successfully")
}

func (t *TripsController) GetTripById(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripById(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (t *TripsController) ListVersions(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	versions, err := t.tripService.ListVersions(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, versions, "Versions fetched successfully")
}
