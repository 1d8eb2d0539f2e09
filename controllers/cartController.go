package controllers

import (
	"net/http"
	"strconv"

	"tableswift/database"

	"github.com/gin-gonic/gin"
)

// tableNumberParam parses the :table_id route segment. Table numbers are
// positive integers, the same contract as the ?table= QR deep link.
func tableNumberParam(c *gin.Context) (int, bool) {
	tableNumber, err := strconv.Atoi(c.Param("table_id"))
	if err != nil || tableNumber < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table id must be a positive integer"})
		return 0, false
	}
	return tableNumber, true
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, ok := tableNumberParam(c)
		if !ok {
			return
		}
		cart := database.Carts.Get(tableNumber)
		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total(), "count": cart.Count()})
	}
}

type addCartItemRequest struct {
	Menu_item_id string `json:"menu_item_id" validate:"required"`
	Notes        string `json:"notes"`
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, ok := tableNumberParam(c)
		if !ok {
			return
		}
		var req addCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		item, found := findMenuItem(req.Menu_item_id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		cart := database.Carts.AddItem(tableNumber, item, req.Notes)
		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total(), "count": cart.Count()})
	}
}

type setQuantityRequest struct {
	Menu_item_id string `json:"menu_item_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"min=0"`
}

// UpdateCartItem sets a line's quantity. Quantity zero removes the line.
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, ok := tableNumberParam(c)
		if !ok {
			return
		}
		var req setQuantityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		cart := database.Carts.SetQuantity(tableNumber, req.Menu_item_id, req.Quantity)
		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total(), "count": cart.Count()})
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, ok := tableNumberParam(c)
		if !ok {
			return
		}
		database.Carts.Clear(tableNumber)
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
