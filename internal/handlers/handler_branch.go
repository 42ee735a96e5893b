package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
)

// branchHandler handles HTTP requests related to branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

func newBranchHandler(branchService portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{branchService: branchService}
}

// registerBranchRoutes registers branch specific routes
func registerBranchRoutes(group *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := newBranchHandler(branchService)

	branches := group.Group("/branches")
	{
		branches.POST("", middleware.RequireRole("ADMIN", "MANAGER"), h.createBranch)
		branches.GET("", h.listBranches)
		branches.GET("/:branchID", h.getBranch)
		branches.PUT("/:branchID", middleware.RequireRole("ADMIN", "MANAGER"), h.updateBranch)
		branches.DELETE("/:branchID", middleware.RequireRole("ADMIN"), h.deactivateBranch)
	}
}

// createBranch godoc
// @Summary Create a branch
// @Description Creates a branch under the caller's operator.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), operatorID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// getBranch godoc
// @Summary Get a branch
// @Description Retrieves a branch, scoped to the caller's operator.
// @Tags branches
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} ErrorResponse
// @Router /branches/{branchID} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), operatorID, branchID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// listBranches godoc
// @Summary List branches
// @Description Retrieves the caller's operator's branches.
// @Tags branches
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListBranchesResponse
// @Failure 500 {object} ErrorResponse
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	branches, err := h.branchService.ListBranches(c.Request.Context(), operatorID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListBranchesResponse{Branches: dto.ToBranchResponses(branches)})
}

// updateBranch godoc
// @Summary Update a branch
// @Description Updates branch details.
// @Tags branches
// @Accept json
// @Produce json
// @Param branchID path string true "Branch ID"
// @Param branch body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /branches/{branchID} [put]
func (h *branchHandler) updateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), operatorID, branchID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// deactivateBranch godoc
// @Summary Deactivate a branch
// @Description Marks a branch inactive so new bookings cannot use it.
// @Tags branches
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /branches/{branchID} [delete]
func (h *branchHandler) deactivateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	if err := h.branchService.DeactivateBranch(c.Request.Context(), operatorID, branchID, requestingUserID); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
