package handlers

import (
	"log"
	"net/http"

	request "billreview/internal/adapter/http/dto/request"
	"billreview/internal/usecase"
	"billreview/pkg"

	"github.com/gin-gonic/gin"
)

// BatchHandler runs the batch stages: reconcile everything in MAPPED and
// export everything in REVIEWED.

type BatchHandler struct {
	reconcile usecase.IReconcileUseCase
	export    usecase.IExportUseCase
}

func NewBatchHandler(reconcile usecase.IReconcileUseCase, export usecase.IExportUseCase) *BatchHandler {
	return &BatchHandler{reconcile: reconcile, export: export}
}

// RunReconcile fans the MAPPED queue out across the worker pool. An empty
// body is accepted and means "defaults".
func (h *BatchHandler) RunReconcile(c *gin.Context) {
	var payload request.BatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid batch options", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	summary, err := h.reconcile.RunBatch(c.Request.Context(), payload.Limit, payload.Workers)
	if err != nil {
		log.Printf("[batch][handler] reconcile failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Batch reconciliation failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[batch][handler] reconcile done total=%d reviewed=%d flagged=%d held=%d errors=%d",
		summary.Total, summary.Reviewed, summary.Flagged, summary.Held, summary.Errors)

	c.JSON(http.StatusOK, summary)
}

// RunExport runs duplicate detection and EOBR numbering over the REVIEWED
// queue and appends the accepted rows to the ledger.
func (h *BatchHandler) RunExport(c *gin.Context) {
	var payload request.BatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid batch options", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	summary, err := h.export.RunExport(c.Request.Context(), payload.Limit)
	if err != nil {
		log.Printf("[batch][handler] export failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Export run failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[batch][handler] export done total=%d new=%d exact=%d yellow=%d rejected=%d",
		summary.Total, summary.NewRecords, summary.ExactDuplicates, summary.YellowWarnings, summary.Rejected)

	c.JSON(http.StatusOK, summary)
}
