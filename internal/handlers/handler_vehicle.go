package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
)

// vehicleHandler handles HTTP requests related to vehicles.
type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
}

func newVehicleHandler(vehicleService portssvc.VehicleSvcFacade) *vehicleHandler {
	return &vehicleHandler{vehicleService: vehicleService}
}

// registerVehicleRoutes registers vehicle specific routes
func registerVehicleRoutes(group *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade) {
	h := newVehicleHandler(vehicleService)

	vehicles := group.Group("/vehicles")
	{
		vehicles.POST("", middleware.RequireRole("ADMIN", "MANAGER"), h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:vehicleID", h.getVehicle)
		vehicles.PUT("/:vehicleID", middleware.RequireRole("ADMIN", "MANAGER"), h.updateVehicle)
		vehicles.DELETE("/:vehicleID", middleware.RequireRole("ADMIN"), h.deactivateVehicle)
	}
}

// createVehicle godoc
// @Summary Register a vehicle
// @Description Registers a vehicle under the caller's operator. Registration numbers
// @Description are unique per operator.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Registration number already in use"
// @Failure 500 {object} ErrorResponse
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), operatorID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// getVehicle godoc
// @Summary Get a vehicle
// @Description Retrieves a vehicle, scoped to the caller's operator.
// @Tags vehicles
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ErrorResponse
// @Router /vehicles/{vehicleID} [get]
func (h *vehicleHandler) getVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), operatorID, vehicleID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// listVehicles godoc
// @Summary List vehicles
// @Description Retrieves the caller's operator's vehicles.
// @Tags vehicles
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListVehiclesResponse
// @Failure 500 {object} ErrorResponse
// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), operatorID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListVehiclesResponse{Vehicles: dto.ToVehicleResponses(vehicles)})
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Description Updates vehicle details. The registration number is immutable.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Param vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vehicles/{vehicleID} [put]
func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), operatorID, vehicleID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// deactivateVehicle godoc
// @Summary Deactivate a vehicle
// @Description Marks a vehicle inactive so it cannot be assigned to new bookings.
// @Tags vehicles
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /vehicles/{vehicleID} [delete]
func (h *vehicleHandler) deactivateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	if err := h.vehicleService.DeactivateVehicle(c.Request.Context(), operatorID, vehicleID, requestingUserID); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
