package routes

import (
	"billreview/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills   = "/bills"
	PathBatches = "/batches"
)

func addBillRoutes(rg *gin.RouterGroup, billHandler *handlers.BillHandler, reviewHandler *handlers.ReviewHandler, batchHandler *handlers.BatchHandler) {
	bills := rg.Group(PathBills)
	{
		bills.POST("", billHandler.IntakeBill)
		bills.GET("", billHandler.ListBills)
		bills.GET("/:id", billHandler.GetBill)
		bills.POST("/:id/revalidate", billHandler.Revalidate)
		bills.POST("/:id/reconcile", billHandler.ReconcileBill)
		bills.POST("/:id/escalate", reviewHandler.Escalate)
		bills.POST("/:id/deny", reviewHandler.Deny)
		bills.POST("/:id/garbage", reviewHandler.MarkGarbage)
		bills.POST("/:id/reset", reviewHandler.Reset)
		bills.POST("/:id/lines/:lineId/decision", reviewHandler.OverrideLine)
	}

	batches := rg.Group(PathBatches)
	{
		batches.POST("/reconcile", batchHandler.RunReconcile)
		batches.POST("/export", batchHandler.RunExport)
	}
}
