package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
)

// transferHandler handles HTTP requests related to cash transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(transferService portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: transferService}
}

// registerTransferRoutes registers cash transfer specific routes
func registerTransferRoutes(group *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := group.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
		transfers.GET("/:transferID", h.getTransfer)
		transfers.PUT("/:transferID", h.updateTransfer)
		transfers.DELETE("/:transferID", h.deleteTransfer)
		transfers.POST("/:transferID/approve", middleware.RequireRole("ADMIN", "MANAGER"), h.approveTransfer)
		transfers.POST("/:transferID/reject", middleware.RequireRole("ADMIN", "MANAGER"), h.rejectTransfer)
	}
}

// createTransfer godoc
// @Summary Create a cash transfer request
// @Description Records a PENDING transfer between two of the operator's users. No
// @Description balance moves until the transfer is approved.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Source or destination user not found"
// @Failure 500 {object} ErrorResponse
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), operatorID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// getTransfer godoc
// @Summary Get a transfer
// @Description Retrieves a transfer, scoped to the caller's operator.
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} ErrorResponse
// @Router /transfers/{transferID} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("transferID")

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), operatorID, transferID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List transfers
// @Description Retrieves a token-paginated list of the operator's transfers, optionally
// @Description filtered by status.
// @Tags transfers
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} dto.ListTransfersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	res, err := h.transferService.ListTransfers(c.Request.Context(), operatorID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// updateTransfer godoc
// @Summary Update a pending transfer
// @Description Amends the amount or note of a transfer that is still PENDING.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Param transfer body dto.UpdateTransferRequest true "Fields to update"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transfer already processed"
// @Router /transfers/{transferID} [put]
func (h *transferHandler) updateTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("transferID")

	var req dto.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.UpdateTransfer(c.Request.Context(), operatorID, transferID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// deleteTransfer godoc
// @Summary Delete a pending transfer
// @Description Removes a transfer that is still PENDING. Settled transfers cannot be
// @Description deleted.
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transfer already processed"
// @Router /transfers/{transferID} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("transferID")

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	if err := h.transferService.DeleteTransfer(c.Request.Context(), operatorID, transferID, requestingUserID); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// approveTransfer godoc
// @Summary Approve a pending transfer
// @Description Settles the transfer: debits the source user, credits the destination
// @Description user and appends the ledger entry, all atomically. Approving an already
// @Description settled transfer fails with 409 and has no effect.
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transfer already processed"
// @Failure 422 {object} ErrorResponse "Insufficient balance"
// @Router /transfers/{transferID}/approve [post]
func (h *transferHandler) approveTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("transferID")

	approverUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.ApproveTransfer(c.Request.Context(), operatorID, transferID, approverUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// rejectTransfer godoc
// @Summary Reject a pending transfer
// @Description Marks the transfer REJECTED with no balance effect.
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transfer already processed"
// @Router /transfers/{transferID}/reject [post]
func (h *transferHandler) rejectTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("transferID")

	approverUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.RejectTransfer(c.Request.Context(), operatorID, transferID, approverUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}
