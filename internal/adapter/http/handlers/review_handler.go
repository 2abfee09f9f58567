package handlers

import (
	"errors"
	"log"
	"net/http"

	request "billreview/internal/adapter/http/dto/request"
	response "billreview/internal/adapter/http/dto/response"
	"billreview/internal/domain/entities"
	"billreview/internal/usecase"
	"billreview/pkg"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles the manual review operations: escalate, deny,
// garbage and reset. None of these are reachable from the automatic engine.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// Escalate moves a bill to the escalation queue with a reviewer message.
func (h *ReviewHandler) Escalate(c *gin.Context) {
	billID := c.Param("id")
	var payload request.EscalateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Escalation message is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	bill, err := h.usecase.Escalate(c.Request.Context(), billID, payload.Message)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[review][handler] escalate bill_id=%s", bill.ID)

	c.JSON(http.StatusOK, response.FromBill(bill))
}

// Deny marks a bill DENIED with a reason code.
func (h *ReviewHandler) Deny(c *gin.Context) {
	billID := c.Param("id")
	var payload request.DenyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Denial reason is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	bill, err := h.usecase.Deny(c.Request.Context(), billID, payload.Reason)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[review][handler] deny bill_id=%s action=%s", bill.ID, bill.Action)

	c.JSON(http.StatusOK, response.FromBill(bill))
}

// MarkGarbage flags a document that is not a processable bill.
func (h *ReviewHandler) MarkGarbage(c *gin.Context) {
	billID := c.Param("id")

	bill, err := h.usecase.MarkGarbage(c.Request.Context(), billID)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[review][handler] garbage bill_id=%s", bill.ID)

	c.JSON(http.StatusOK, response.FromBill(bill))
}

// Reset sends a bill back to MAPPED for reprocessing.
func (h *ReviewHandler) Reset(c *gin.Context) {
	billID := c.Param("id")

	bill, err := h.usecase.Reset(c.Request.Context(), billID)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[review][handler] reset bill_id=%s", bill.ID)

	c.JSON(http.StatusOK, response.FromBill(bill))
}

// OverrideLine replaces the automatic decision on one service line.
func (h *ReviewHandler) OverrideLine(c *gin.Context) {
	billID := c.Param("id")
	lineID := c.Param("lineId")
	var payload request.LineOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Line decision is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	line, err := h.usecase.OverrideLine(c.Request.Context(), billID, lineID, entities.LineDecision(payload.Decision), payload.Amount, payload.Reason)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[review][handler] line override bill_id=%s line_id=%s decision=%s", billID, lineID, line.Decision)

	c.JSON(http.StatusOK, response.FromBillLineItem(line))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillID), errors.Is(err, usecase.ErrEscalationMessageRequired), errors.Is(err, usecase.ErrDenialReasonRequired),
		errors.Is(err, usecase.ErrInvalidLineDecision), errors.Is(err, usecase.ErrAmountRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillTerminal):
		return pkg.NewDomainErrorSimple("BILL_TERMINAL", "Bill is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrResetNotAllowed):
		return pkg.NewDomainErrorSimple("RESET_NOT_ALLOWED", "Completed bills cannot be reset", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
