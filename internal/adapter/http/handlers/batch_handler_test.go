package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"billreview/internal/adapter/http/handlers/mocks"
	"billreview/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBatchRouter(h *BatchHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/batches/reconcile", h.RunReconcile)
	r.POST("/v1/batches/export", h.RunExport)
	return r
}

func TestBatchHandler_RunReconcile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body uses defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewBatchHandler(reconcile, mocks.NewMockIExportUseCase(ctrl))
		r := newBatchRouter(h)

		reconcile.EXPECT().RunBatch(gomock.Any(), 0, 0).Return(usecase.BatchSummary{Total: 3, Reviewed: 2, Flagged: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/batches/reconcile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != float64(3) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("options pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewBatchHandler(reconcile, mocks.NewMockIExportUseCase(ctrl))
		r := newBatchRouter(h)

		reconcile.EXPECT().RunBatch(gomock.Any(), 10, 2).Return(usecase.BatchSummary{Total: 10}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/batches/reconcile", bytes.NewBufferString(`{"limit":10,"workers":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBatchHandler(mocks.NewMockIReconcileUseCase(ctrl), mocks.NewMockIExportUseCase(ctrl))
		r := newBatchRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/batches/reconcile", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewBatchHandler(reconcile, mocks.NewMockIExportUseCase(ctrl))
		r := newBatchRouter(h)

		reconcile.EXPECT().RunBatch(gomock.Any(), 0, 0).Return(usecase.BatchSummary{}, errors.New("dynamo unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/batches/reconcile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestBatchHandler_RunExport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		export := mocks.NewMockIExportUseCase(ctrl)
		h := NewBatchHandler(mocks.NewMockIReconcileUseCase(ctrl), export)
		r := newBatchRouter(h)

		export.EXPECT().RunExport(gomock.Any(), 0).Return(usecase.ExportSummary{Total: 2, NewRecords: 1, ExactDuplicates: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/batches/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["exact_duplicates"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		export := mocks.NewMockIExportUseCase(ctrl)
		h := NewBatchHandler(mocks.NewMockIReconcileUseCase(ctrl), export)
		r := newBatchRouter(h)

		export.EXPECT().RunExport(gomock.Any(), 0).Return(usecase.ExportSummary{}, errors.New("ledger unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/batches/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
