package handlers

import (
	"fmt"
	"net/http"
	"time"

	"callmeback-api/middleware"
	"callmeback-api/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportReminders streams the caller's non-deleted reminders as an xlsx file.
// GET /api/reminders/export
func (h *Handler) ExportReminders(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var reminders []models.Reminder
	err := h.DB.
		Where("user_id = ? AND status <> ?", user.ID, models.ReminderDeleted).
		Order("date_time asc").
		Find(&reminders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reminders"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Reminders"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"No", "Name To Call", "Phone Number", "Description", "Scheduled At", "Status", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	styleHeader, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetCellStyle(sheetName, "A1", "G1", styleHeader)

	row := 2
	for i, r := range reminders {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.NameToCall)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.PhoneNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.DateTime.Format(time.RFC3339))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.CreatedAt.Format(time.RFC3339))
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "C", 20)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "G", 22)

	fileName := fmt.Sprintf("Reminders_%s.xlsx", time.Now().Format("20060102"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate export"})
	}
}
