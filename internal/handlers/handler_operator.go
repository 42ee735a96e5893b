package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
)

// operatorHandler handles HTTP requests related to operators (tenants).
type operatorHandler struct {
	operatorService portssvc.OperatorSvcFacade
}

func newOperatorHandler(operatorService portssvc.OperatorSvcFacade) *operatorHandler {
	return &operatorHandler{operatorService: operatorService}
}

// registerOperatorRoutes registers operator specific routes
func registerOperatorRoutes(group *gin.RouterGroup, operatorService portssvc.OperatorSvcFacade) {
	h := newOperatorHandler(operatorService)

	operators := group.Group("/operators")
	{
		operators.POST("", middleware.RequireRole("ADMIN"), h.createOperator)
		operators.GET("", middleware.RequireRole("ADMIN"), h.listOperators)
		operators.GET("/:operatorID", h.getOperator)
		operators.PUT("/:operatorID", middleware.RequireRole("ADMIN"), h.updateOperator)
	}
}

// createOperator godoc
// @Summary Create an operator
// @Description Onboards a new operator (tenant) with a unique code.
// @Tags operators
// @Accept json
// @Produce json
// @Param operator body dto.CreateOperatorRequest true "Operator details"
// @Success 201 {object} dto.OperatorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Failure 500 {object} ErrorResponse
// @Router /operators [post]
func (h *operatorHandler) createOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	operator, err := h.operatorService.CreateOperator(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOperatorResponse(operator))
}

// getOperator godoc
// @Summary Get an operator
// @Description Retrieves operator details. Non-admin callers may only read their own operator.
// @Tags operators
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Success 200 {object} dto.OperatorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /operators/{operatorID} [get]
func (h *operatorHandler) getOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID := c.Param("operatorID")

	tokenOperatorID, ok := middleware.GetOperatorIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)
	if !ok || (operatorID != tokenOperatorID && role != "ADMIN") {
		respondServiceError(c, logger, apperrors.ErrForbidden)
		return
	}

	operator, err := h.operatorService.GetOperatorByID(c.Request.Context(), operatorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator))
}

// listOperators godoc
// @Summary List operators
// @Description Retrieves a paginated list of all operators.
// @Tags operators
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.OperatorResponse
// @Failure 500 {object} ErrorResponse
// @Router /operators [get]
func (h *operatorHandler) listOperators(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	operators, err := h.operatorService.ListOperators(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	res := make([]dto.OperatorResponse, len(operators))
	for i := range operators {
		res[i] = dto.ToOperatorResponse(&operators[i])
	}
	c.JSON(http.StatusOK, res)
}

// updateOperator godoc
// @Summary Update an operator
// @Description Updates operator details. The code and booking sequence are immutable.
// @Tags operators
// @Accept json
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Param operator body dto.UpdateOperatorRequest true "Fields to update"
// @Success 200 {object} dto.OperatorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /operators/{operatorID} [put]
func (h *operatorHandler) updateOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID := c.Param("operatorID")

	var req dto.UpdateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	operator, err := h.operatorService.UpdateOperator(c.Request.Context(), operatorID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator))
}
