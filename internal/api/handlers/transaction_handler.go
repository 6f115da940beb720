package handlers

import (
	"errors"
	"strconv"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description All transactions, newest date first; ties broken by newest insert first
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	transactions, err := h.txService.ListTransactions(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to list transactions")
	}

	return c.JSON(transactions)
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Positive amounts are income, negative amounts are expenses. Zero is accepted.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := h.txService.CreateTransaction(c.Context(), &req)
	if err != nil {
		return h.fail(c, err, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateTransaction godoc
// @Summary Replace a transaction
// @Description Rewrites date, category, amount and description. Required fields are not re-validated.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.txService.UpdateTransaction(c.Context(), id, &req)
	if err != nil {
		return h.fail(c, err, "Failed to update transaction")
	}

	return c.JSON(updated)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Deleting an id that does not exist also succeeds
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	if err := h.txService.DeleteTransaction(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete transaction")
	}

	return c.JSON(dto.DeleteResponse{Success: true})
}

// Dashboard godoc
// @Summary Transactions with aggregates
// @Description Transaction list plus spending by category, monthly income and expenses, and summary totals
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *TransactionHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.txService.Dashboard(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to build dashboard")
	}

	return c.JSON(dashboard)
}

// fail maps service errors to HTTP responses. Store errors keep their underlying message.
func (h *TransactionHandler) fail(c *fiber.Ctx, err error, msg string) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
		})
	}

	if errors.Is(err, service.ErrTransactionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
		})
	}

	h.logger.Error(msg,
		zap.Error(err),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("requestid")),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
