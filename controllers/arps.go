// controllers/arps.go - Annual Research Performance Score endpoints
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"incentive-portal-api/config"
	"incentive-portal-api/services"

	"github.com/gin-gonic/gin"
)

// evaluationYearFromQuery resolves the ?year= parameter, defaulting to the
// evaluation year the current date falls in (windows run June to May).
func evaluationYearFromQuery(c *gin.Context) (int, bool) {
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 2000 || year > 2100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
			return 0, false
		}
		return year, true
	}

	now := time.Now()
	year := now.Year()
	if now.Month() < time.June {
		year--
	}
	return year, true
}

// GetMyArps aggregates the caller's approved items into an ARPS record.
func GetMyArps(c *gin.Context) {
	userID, _ := c.Get("userID")

	year, ok := evaluationYearFromQuery(c)
	if !ok {
		return
	}

	result, err := services.NewArpsService(config.DB).ForUser(userID.(int), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ARPS"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetUserArps aggregates any user's ARPS record (admin only).
func GetUserArps(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	year, ok := evaluationYearFromQuery(c)
	if !ok {
		return
	}

	result, err := services.NewArpsService(config.DB).ForUser(userID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ARPS"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
