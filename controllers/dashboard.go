package controllers

import (
	"net/http"

	"scholarship-portal-api/config"
	"scholarship-portal-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns application counts per status for the admin
// dashboard header cards.
func GetDashboardStats(c *gin.Context) {
	var total int64
	if err := config.DB.Model(&models.ScholarshipApplication{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	counts := make(map[string]int64, len(models.ValidStatuses))
	for _, status := range models.ValidStatuses {
		var count int64
		if err := config.DB.Model(&models.ScholarshipApplication{}).
			Where("status = ?", status).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
			return
		}
		counts[status] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"by_status": counts,
	})
}
