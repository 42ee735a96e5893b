package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
)

// reportingHandler handles HTTP requests for operational reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(reportingService portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers reporting specific routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports", middleware.RequireRole("ADMIN", "MANAGER"))
	{
		reports.GET("/bookings", h.bookingReport)
		reports.GET("/deliveries", h.deliveryReport)
		reports.GET("/revenue", h.revenueReport)
		reports.GET("/handling-charges", h.handlingReport)
	}
}

func (h *reportingHandler) bindRangeParams(c *gin.Context) (dto.ReportRangeParams, string, bool) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fromDate and toDate are required as YYYY-MM-DD"})
		return params, "", false
	}
	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return params, "", false
	}
	return params, operatorID, true
}

// bookingReport godoc
// @Summary Booking report
// @Description Counts bookings created in the date range grouped by status.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.BookingReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/bookings [get]
func (h *reportingHandler) bookingReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, operatorID, ok := h.bindRangeParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BookingReport(c.Request.Context(), operatorID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// deliveryReport godoc
// @Summary Delivery report
// @Description Lists bookings delivered in the date range.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.DeliveryReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/deliveries [get]
func (h *reportingHandler) deliveryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, operatorID, ok := h.bindRangeParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.DeliveryReport(c.Request.Context(), operatorID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// revenueReport godoc
// @Summary Revenue report
// @Description Sums booking revenue in the date range split by LR type.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.RevenueReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/revenue [get]
func (h *reportingHandler) revenueReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, operatorID, ok := h.bindRangeParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.RevenueReport(c.Request.Context(), operatorID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// handlingReport godoc
// @Summary Handling charges report
// @Description Sums loading and unloading charges per branch in the date range.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.HandlingReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/handling-charges [get]
func (h *reportingHandler) handlingReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, operatorID, ok := h.bindRangeParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.HandlingReport(c.Request.Context(), operatorID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
