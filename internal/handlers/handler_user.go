package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
)

// userHandler handles HTTP requests related to users and their cargo balances.
type userHandler struct {
	userService   portssvc.UserSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

func newUserHandler(userService portssvc.UserSvcFacade, ledgerService portssvc.LedgerSvcFacade) *userHandler {
	return &userHandler{userService: userService, ledgerService: ledgerService}
}

// registerUserRoutes registers user specific routes
func registerUserRoutes(group *gin.RouterGroup, userService portssvc.UserSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newUserHandler(userService, ledgerService)

	users := group.Group("/users")
	{
		users.POST("", middleware.RequireRole("ADMIN", "MANAGER"), h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:userID", h.getUser)
		users.PUT("/:userID", middleware.RequireRole("ADMIN", "MANAGER"), h.updateUser)
		users.DELETE("/:userID", middleware.RequireRole("ADMIN"), h.deleteUser)
		users.GET("/:userID/daily-balance", h.getDailyBalance)
		users.GET("/:userID/transactions", h.listTransactions)
	}
}

// createUser godoc
// @Summary Create a user
// @Description Creates a staff user under the caller's operator.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), operatorID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user
// @Description Retrieves a user, scoped to the caller's operator.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if user.OperatorID != operatorID {
		respondServiceError(c, logger, apperrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Description Retrieves the caller's operator's users.
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), operatorID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: dto.ToUserResponses(users)})
}

// updateUser godoc
// @Summary Update a user
// @Description Updates a user's name, role or branch assignment.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	existing, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil || existing.OperatorID != operatorID {
		respondServiceError(c, logger, apperrors.ErrNotFound)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft-deletes a user. Users cannot delete themselves.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	requestingUserID, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	existing, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil || existing.OperatorID != operatorID {
		respondServiceError(c, logger, apperrors.ErrNotFound)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, requestingUserID); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getDailyBalance godoc
// @Summary Get a user's daily balance
// @Description Sums the charges of the user's PAID bookings created on the given
// @Description date. Days without bookings report zero.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Param date query string false "Calendar date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DailyBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/daily-balance [get]
func (h *userHandler) getDailyBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	amount, err := h.ledgerService.GetDailyBalance(c.Request.Context(), operatorID, userID, date)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DailyBalanceResponse{
		UserID: userID,
		Date:   date.Format("2006-01-02"),
		Amount: amount,
	})
}

// listTransactions godoc
// @Summary List a user's ledger transactions
// @Description Retrieves a token-paginated list of a user's cargo balance movements.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/transactions [get]
func (h *userHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	_, operatorID, ok := requireAuthContext(c)
	if !ok {
		return
	}

	res, err := h.ledgerService.ListUserTransactions(c.Request.Context(), operatorID, userID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
