package controllers

import (
	"net/http"
	"os"
	"sync"

	"tableswift/database"
	"tableswift/helpers"
	"tableswift/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	notifierOnce sync.Once
	notifier     *helpers.TelegramNotifier
)

// InitNotifier points the shared notifier at baseURL. Called from main; tests
// call it with an httptest server URL.
func InitNotifier(baseURL string) {
	kitchenNotifier().SetBaseURL(baseURL)
}

// kitchenNotifier returns the process-wide notifier, creating it (and its
// single worker goroutine) on first use.
func kitchenNotifier() *helpers.TelegramNotifier {
	notifierOnce.Do(func() {
		notifier = helpers.NewTelegramNotifier(os.Getenv("TELEGRAM_API_BASE"))
	})
	return notifier
}

type orderLineRequest struct {
	Menu_item_id string `json:"menu_item_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"min=1"`
	Notes        string `json:"notes"`
}

type placeOrderRequest struct {
	Table_number int                `json:"table_number" validate:"min=1"`
	Items        []orderLineRequest `json:"items" validate:"omitempty,dive"`
}

// CreateOrder is the checkout step. The order is appended to the store in
// PENDING state, handed to the notifier exactly once, and pushed to kitchen
// display clients. A failed or unconfigured notification never fails the
// order.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var items []models.CartItem
		if len(req.Items) > 0 {
			// direct checkout: price every line from the current menu
			for _, line := range req.Items {
				menuItem, found := findMenuItem(line.Menu_item_id)
				if !found {
					c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found: " + line.Menu_item_id})
					return
				}
				items = append(items, models.CartItem{
					Cart_item_id: uuid.NewString(),
					Menu_item_id: menuItem.Menu_item_id,
					Name:         menuItem.Name,
					Price:        menuItem.Price,
					Quantity:     line.Quantity,
					Notes:        line.Notes,
					Image:        menuItem.Image,
				})
			}
		} else {
			// checkout of the table's server-side cart
			items = database.Carts.Take(req.Table_number)
			if len(items) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
		}

		order, err := database.Orders.Place(req.Table_number, items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		kitchenNotifier().Dispatch(order, CurrentTelegramConfig())
		BroadcastOrderCreated(order)
		BroadcastKitchenUpdate()

		c.JSON(http.StatusCreated, order)
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, database.Orders.List())
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		order, found := database.Orders.Get(c.Param("order_id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
