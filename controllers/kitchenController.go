package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tableswift/database"
	"tableswift/models"

	"github.com/gin-gonic/gin"
)

// GetKitchenTables returns the kitchen board: active orders grouped per table,
// longest-waiting table first. Rebuilt from the order list on every call.
func GetKitchenTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.ProjectTables(database.Orders.List()))
	}
}

type advanceRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// AdvanceTableOrders moves the table's whole bucket of orders in the given
// status one step forward ("Start Cooking", "Mark Ready", "Complete").
func AdvanceTableOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, ok := tableNumberParam(c)
		if !ok {
			return
		}
		var req advanceRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
			return
		}

		advanced, err := database.Orders.AdvanceTable(tableNumber, req.Status)
		if err != nil {
			respondTransitionError(c, err)
			return
		}
		BroadcastKitchenUpdate()
		c.JSON(http.StatusOK, gin.H{"advanced": advanced})
	}
}

// CloseTable settles the bill once nothing is left cooking, moving every
// SERVED order to PAID and dropping the table from the board.
func CloseTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, ok := tableNumberParam(c)
		if !ok {
			return
		}
		closed, err := database.Orders.CloseTable(tableNumber)
		if err != nil {
			respondTransitionError(c, err)
			return
		}
		BroadcastKitchenUpdate()
		c.JSON(http.StatusOK, gin.H{"closed": closed})
	}
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrTableNotClosable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrNoOrdersInBucket):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type tableQRCode struct {
	Table_number int    `json:"table_number"`
	Url          string `json:"url"`
	Image_url    string `json:"image_url"`
}

// GetTableQRCodes builds the per-table deep links handed out as printable QR
// codes. Each link points a customer's device at that table's ordering
// session via the ?table= query parameter.
func GetTableQRCodes() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := strconv.Atoi(c.DefaultQuery("count", "8"))
		if err != nil || count < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		baseUrl := c.Query("base_url")
		if baseUrl == "" {
			baseUrl = "http://" + c.Request.Host
		}

		codes := make([]tableQRCode, 0, count)
		for tableNumber := 1; tableNumber <= count; tableNumber++ {
			deepLink := fmt.Sprintf("%s?table=%d", baseUrl, tableNumber)
			codes = append(codes, tableQRCode{
				Table_number: tableNumber,
				Url:          deepLink,
				Image_url:    "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=" + url.QueryEscape(deepLink),
			})
		}
		c.JSON(http.StatusOK, codes)
	}
}
