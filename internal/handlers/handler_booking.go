package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
)

// bookingHandler handles HTTP requests related to cargo bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bookingService portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bookingService}
}

// RegisterBookingRoutes registers booking specific routes
func RegisterBookingRoutes(group *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := group.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/:bookingID", h.getBooking)
		bookings.PATCH("/:bookingID/status", h.updateBookingStatus)
		bookings.PATCH("/:bookingID/vehicle", h.assignVehicle)
	}
}

// createBooking godoc
// @Summary Create a booking
// @Description Claims the operator's next sequence number, derives the booking number
// @Description and creates the booking. PAID bookings charge the caller's cargo balance.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Branch or vehicle not found"
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), operatorID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// getBooking godoc
// @Summary Get a booking
// @Description Retrieves a booking, scoped to the caller's operator.
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} ErrorResponse
// @Router /bookings/{bookingID} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), operatorID, bookingID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Description Retrieves a token-paginated list of the operator's bookings, optionally
// @Description filtered by status.
// @Tags bookings
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Param status query string false "Filter by status" Enums(BOOKED, IN_TRANSIT, ARRIVED, DELIVERED, CANCELLED)
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	res, err := h.bookingService.ListBookings(c.Request.Context(), operatorID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// updateBookingStatus godoc
// @Summary Update booking status
// @Description Moves the booking along its lifecycle. Illegal transitions are rejected.
// @Description Delivering a TO_PAY booking charges the caller's cargo balance.
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param status body dto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Illegal status transition"
// @Failure 500 {object} ErrorResponse
// @Router /bookings/{bookingID}/status [patch]
func (h *bookingHandler) updateBookingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), operatorID, bookingID, req.Status, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// assignVehicle godoc
// @Summary Assign a vehicle to a booking
// @Description Attaches one of the operator's vehicles to an open booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param vehicle body dto.AssignVehicleRequest true "Vehicle assignment"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Booking already delivered or cancelled"
// @Failure 500 {object} ErrorResponse
// @Router /bookings/{bookingID}/vehicle [patch]
func (h *bookingHandler) assignVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	var req dto.AssignVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.AssignVehicle(c.Request.Context(), operatorID, bookingID, req.VehicleID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
