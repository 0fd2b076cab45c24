package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"scholarship-portal-api/config"
	"scholarship-portal-api/models"

	"github.com/gin-gonic/gin"
)

// GetApplications returns applications for the admin dashboard, newest
// first. Searching happens client-side over this snapshot; the only
// server-side filter is the optional status.
func GetApplications(c *gin.Context) {
	var applications []models.ScholarshipApplication
	query := config.DB.Order("create_at DESC")

	if status := c.Query("status"); status != "" {
		if !models.IsValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

// GetApplication returns a single application by ID
func GetApplication(c *gin.Context) {
	id := c.Param("id")

	var application models.ScholarshipApplication
	if err := config.DB.Where("application_id = ?", id).First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"application": application,
	})
}

// UpdateApplicationStatus overwrites an application's status. Any of the
// four values may replace any other; there is no transition graph and no
// history of prior statuses. Repeating the same value is a no-op.
func UpdateApplicationStatus(c *gin.Context) {
	id := c.Param("id")

	type StatusUpdateRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid status %q", req.Status),
		})
		return
	}

	var application models.ScholarshipApplication
	if err := config.DB.Where("application_id = ?", id).First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	now := time.Now()
	application.Status = req.Status
	application.UpdateAt = &now

	if err := config.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Status updated successfully",
		"application": application,
	})
}

// ExportApplications streams all applications as CSV for offline review.
func ExportApplications(c *gin.Context) {
	var applications []models.ScholarshipApplication
	if err := config.DB.Order("create_at DESC").Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	filename := fmt.Sprintf("applications-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	header := []string{
		"application_id", "full_name", "email", "phone", "community_name",
		"university", "course", "year_of_study", "cgpa", "status", "created_at",
	}
	if err := w.Write(header); err != nil {
		return
	}

	for _, app := range applications {
		record := []string{
			strconv.Itoa(app.ApplicationID),
			app.FullName,
			app.Email,
			app.Phone,
			app.CommunityName,
			app.University,
			app.Course,
			app.YearOfStudy,
			app.CGPA,
			app.Status,
			app.CreateAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return
		}
	}
}
