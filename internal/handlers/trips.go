package handlers

import (
	"errors"
	"net/http"

	"travel_planner/internal/models"
	"travel_planner/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response messages to avoid magic strings and typos.
const (
	statusOK = "ok"

	msgTripDeleted = "Trip deleted successfully"

	errTripNotFound = "Trip not found"
	errFetchTrips   = "Failed to fetch trips"
	errFetchTrip    = "Failed to fetch trip"
	errAddTrip      = "Failed to add trip"
	errUpdateTrip   = "Failed to update trip"
	errDeleteTrip   = "Failed to delete trip"
	errStoreDown    = "Store unavailable"
)

// TripRequest is the create payload. UserUID is honoured only on the legacy routes.
type TripRequest struct {
	TripName    string      `json:"tripName" binding:"required" example:"Paris"`
	Destination string      `json:"destination" binding:"required" example:"France"`
	StartDate   models.Date `json:"startDate" swaggertype:"string" example:"2025-06-01"`
	EndDate     models.Date `json:"endDate" swaggertype:"string" example:"2025-06-10"`
	UserUID     string      `json:"userUid,omitempty"`
}

// TripPatchRequest is the partial update payload.
type TripPatchRequest struct {
	TripName    *string      `json:"tripName,omitempty" binding:"omitempty,min=1"`
	Destination *string      `json:"destination,omitempty" binding:"omitempty,min=1"`
	StartDate   *models.Date `json:"startDate,omitempty" swaggertype:"string"`
	EndDate     *models.Date `json:"endDate,omitempty" swaggertype:"string"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isBadInput reports whether err is a service-side validation failure.
func isBadInput(err error) bool {
	return errors.Is(err, service.ErrInvalidTrip) ||
		errors.Is(err, service.ErrInvalidDates) ||
		errors.Is(err, service.ErrInvalidExpense)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	if h.services.Health != nil {
		if err := h.services.Health.Ping(c.Request.Context()); err != nil {
			h.logAndJSONError(c, http.StatusServiceUnavailable, errStoreDown, "health_ping_failed", err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      List trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Trip
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trips [get]
func (h *Handler) listTrips(c *gin.Context) {
	trips, err := h.services.Trips.List(c.Request.Context(), callerUID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchTrips, "trip_list_failed", err)
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      Get a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "trip id"
// @Success      200  {object}  map[string]models.Trip
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trips/{id} [get]
func (h *Handler) getTrip(c *gin.Context) {
	trip, err := h.services.Trips.Get(c.Request.Context(), c.Param("id"), callerUID(c))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errTripNotFound})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchTrip, "trip_get_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// @Summary      Create a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      TripRequest  true  "trip"
// @Success      201   {object}  map[string]models.Trip
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /trips [post]
func (h *Handler) createTrip(c *gin.Context) {
	var input TripRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	trip, err := h.services.Trips.Create(c.Request.Context(), callerUID(c), models.Trip{
		TripName:    input.TripName,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		UserUID:     input.UserUID,
	})
	if isBadInput(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errAddTrip, "trip_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// @Summary      Update a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "trip id"
// @Param        body  body      TripPatchRequest  true  "changes"
// @Success      200   {object}  map[string]models.Trip
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /trips/{id} [put]
func (h *Handler) updateTrip(c *gin.Context) {
	var input TripPatchRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	trip, err := h.services.Trips.Update(c.Request.Context(), c.Param("id"), callerUID(c), models.TripPatch{
		TripName:    input.TripName,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	})
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errTripNotFound})
		return
	case isBadInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateTrip, "trip_update_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// @Summary      Delete a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "trip id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /trips/{id} [delete]
func (h *Handler) deleteTrip(c *gin.Context) {
	err := h.services.Trips.Delete(c.Request.Context(), c.Param("id"), callerUID(c))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errTripNotFound})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteTrip, "trip_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgTripDeleted})
}
