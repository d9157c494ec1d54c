package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/initializers"
	"github.com/melodias-store/melodias-api/models"
	"github.com/tealeg/xlsx"
)

// ExportSalesReport flattens the full order ledger into a downloadable
// spreadsheet: one row per order, no aggregation.
func ExportSalesReport(ctx *gin.Context) {
	var allOrders []models.Order
	if err := initializers.DB.Order("created_at desc").Find(&allOrders).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var users []models.User
	if err := initializers.DB.Find(&users).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	emailByID := make(map[uint]string, len(users))
	for _, u := range users {
		emailByID[u.ID] = u.Email
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	// Header row
	headers := []string{"Order ID", "Customer", "Total", "Status", "Date"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	// Data rows
	for _, o := range allOrders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(emailByID[o.UserID])
		row.AddCell().SetValue(o.Total.StringFixed(2))
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(o.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	}

	// Set response headers for download
	ctx.Header("Content-Disposition", "attachment; filename=sales_report.xlsx")
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Transfer-Encoding", "binary")
	ctx.Header("Expires", "0")

	// Write file to response
	if err := file.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}
