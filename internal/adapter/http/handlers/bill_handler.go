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

var errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)

// BillHandler handles bill intake, lookup and single-bill reconciliation.

type BillHandler struct {
	validate  usecase.IValidateUseCase
	reconcile usecase.IReconcileUseCase
	review    usecase.IReviewUseCase
}

func NewBillHandler(validate usecase.IValidateUseCase, reconcile usecase.IReconcileUseCase, review usecase.IReviewUseCase) *BillHandler {
	return &BillHandler{validate: validate, reconcile: reconcile, review: review}
}

// IntakeBill accepts one extracted bill from the scanning pipeline, runs the
// validation gate and persists the result. Validation failures are a normal
// 201: the bill lands in INVALID with its failure list, not an HTTP error.
func (h *BillHandler) IntakeBill(c *gin.Context) {
	var payload request.BillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	bill, items := payload.ToEntities()
	created, err := h.validate.Intake(c.Request.Context(), bill, items)
	if err != nil {
		log.Printf("[bill][handler] intake failed claim_id=%s err=%v", payload.ClaimID, err)
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bill][handler] intake success bill_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromBill(created))
}

// GetBill returns one bill with its service lines.
func (h *BillHandler) GetBill(c *gin.Context) {
	billID := c.Param("id")

	bill, items, err := h.review.GetBill(c.Request.Context(), billID)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillWithLines(bill, items))
}

// ListBills returns the work queue for a status (default MAPPED).
func (h *BillHandler) ListBills(c *gin.Context) {
	status := entities.BillStatus(c.DefaultQuery("status", string(entities.BillStatusMapped)))

	bills, err := h.review.ListQueue(c.Request.Context(), status, 0)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, response.FromBill(b))
	}
	c.JSON(http.StatusOK, out)
}

// ReconcileBill runs one bill through the comparison engine.
func (h *BillHandler) ReconcileBill(c *gin.Context) {
	billID := c.Param("id")
	log.Printf("[bill][handler] reconcile start bill_id=%s", billID)

	result, err := h.reconcile.ReconcileBill(c.Request.Context(), billID)
	if err != nil {
		log.Printf("[bill][handler] reconcile failed bill_id=%s err=%v", billID, err)
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bill][handler] reconcile success bill_id=%s status=%s action=%s", billID, result.Status, result.Action)

	c.JSON(http.StatusOK, result)
}

// Revalidate reruns the validation gate on a stored bill.
func (h *BillHandler) Revalidate(c *gin.Context) {
	billID := c.Param("id")

	bill, err := h.validate.Revalidate(c.Request.Context(), billID)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillNotMapped):
		return pkg.NewDomainErrorSimple("BILL_NOT_MAPPED", "Bill is not ready for reconciliation", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainErrorSimple("NO_LINE_ITEMS", "Bill has no service lines", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
