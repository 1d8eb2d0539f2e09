package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tableswift/database"
	"tableswift/models"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/assert.v1"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// fresh in-memory state, storage is never touched on these paths
	database.Orders = database.NewOrderStore()
	database.Carts = database.NewCartStore()
	menuMu.Lock()
	menuItems = models.InitialMenuItems
	categories = models.InitialCategories
	menuMu.Unlock()
	settingsMu.Lock()
	telegramConfig = models.TelegramConfig{}
	settingsMu.Unlock()

	router := gin.New()
	router.GET("/menu-items", GetMenuItems())
	router.GET("/carts/:table_id", GetCart())
	router.POST("/carts/:table_id/items", AddCartItem())
	router.PATCH("/carts/:table_id/items", UpdateCartItem())
	router.POST("/orders", CreateOrder())
	router.GET("/orders", GetOrders())
	router.GET("/kitchen/tables", GetKitchenTables())
	router.POST("/kitchen/tables/:table_id/advance", AdvanceTableOrders())
	router.POST("/kitchen/tables/:table_id/close", CloseTable())
	router.GET("/kitchen/qrcodes", GetTableQRCodes())
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func placeOrder(t *testing.T, router *gin.Engine, table string) models.Order {
	t.Helper()
	w := do(router, "POST", "/orders", `{
		"table_number": `+table+`,
		"items": [
			{"menu_item_id": "3", "quantity": 2},
			{"menu_item_id": "7", "quantity": 1}
		]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: status %d body %s", w.Code, w.Body.String())
	}
	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatal(err)
	}
	return order
}

func TestCreateOrderPricesFromMenu(t *testing.T) {
	router := newTestRouter(t)
	order := placeOrder(t, router, "4")

	assert.Equal(t, order.Table_number, 4)
	assert.Equal(t, order.Total_amount, 56.0)
	assert.Equal(t, order.Status, models.StatusPending)
	assert.Equal(t, len(order.Items), 2)
	assert.Equal(t, order.Items[0].Name, "Wagyu Beef Burger")
}

func TestCreateOrderUnknownMenuItem(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, "POST", "/orders", `{"table_number": 4, "items": [{"menu_item_id": "nope", "quantity": 1}]}`)
	assert.Equal(t, w.Code, http.StatusNotFound)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	router := newTestRouter(t)
	for _, quantity := range []string{"0", "-2"} {
		w := do(router, "POST", "/orders", `{"table_number": 4, "items": [{"menu_item_id": "3", "quantity": `+quantity+`}]}`)
		assert.Equal(t, w.Code, http.StatusBadRequest)
	}
	// nothing was accepted into the store
	var orders []models.Order
	_ = json.Unmarshal(do(router, "GET", "/orders", "").Body.Bytes(), &orders)
	assert.Equal(t, len(orders), 0)
}

func TestCreateOrderRejectsLineWithoutMenuItemId(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, "POST", "/orders", `{"table_number": 4, "items": [{"quantity": 1}]}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestCreateOrderRejectsBadTable(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, "POST", "/orders", `{"table_number": 0, "items": [{"menu_item_id": "3", "quantity": 1}]}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestCheckoutFromCart(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, "POST", "/carts/4/items", `{"menu_item_id": "3"}`)
	assert.Equal(t, w.Code, http.StatusOK)
	w = do(router, "POST", "/carts/4/items", `{"menu_item_id": "3"}`)
	assert.Equal(t, w.Code, http.StatusOK)
	w = do(router, "POST", "/carts/4/items", `{"menu_item_id": "7", "notes": "cold glass"}`)
	assert.Equal(t, w.Code, http.StatusOK)

	w = do(router, "POST", "/orders", `{"table_number": 4}`)
	assert.Equal(t, w.Code, http.StatusCreated)
	var order models.Order
	_ = json.Unmarshal(w.Body.Bytes(), &order)
	assert.Equal(t, order.Total_amount, 56.0)

	// the cart was consumed by checkout
	w = do(router, "GET", "/carts/4", "")
	var cartResp struct {
		Cart models.Cart `json:"cart"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &cartResp)
	assert.Equal(t, len(cartResp.Cart.Items), 0)

	// an empty cart cannot check out again
	w = do(router, "POST", "/orders", `{"table_number": 4}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestCartQuantityZeroRemovesLine(t *testing.T) {
	router := newTestRouter(t)
	_ = do(router, "POST", "/carts/2/items", `{"menu_item_id": "3"}`)
	w := do(router, "PATCH", "/carts/2/items", `{"menu_item_id": "3", "quantity": 0}`)
	assert.Equal(t, w.Code, http.StatusOK)

	var cartResp struct {
		Cart models.Cart `json:"cart"`
	}
	_ = json.Unmarshal(do(router, "GET", "/carts/2", "").Body.Bytes(), &cartResp)
	assert.Equal(t, len(cartResp.Cart.Items), 0)
}

func TestKitchenBoardAndBatchFlow(t *testing.T) {
	router := newTestRouter(t)
	_ = placeOrder(t, router, "4")
	_ = placeOrder(t, router, "4")
	_ = placeOrder(t, router, "9")

	var board []models.TableTicket
	_ = json.Unmarshal(do(router, "GET", "/kitchen/tables", "").Body.Bytes(), &board)
	assert.Equal(t, len(board), 2)
	assert.Equal(t, board[0].Table_number, 4) // placed first, waiting longest
	assert.Equal(t, len(board[0].Pending), 4)

	// start cooking everything pending at table 4
	w := do(router, "POST", "/kitchen/tables/4/advance", `{"status": "PENDING"}`)
	assert.Equal(t, w.Code, http.StatusOK)
	var advResp map[string]int
	_ = json.Unmarshal(w.Body.Bytes(), &advResp)
	assert.Equal(t, advResp["advanced"], 2)

	_ = json.Unmarshal(do(router, "GET", "/kitchen/tables", "").Body.Bytes(), &board)
	assert.Equal(t, len(board[0].Pending), 0)
	assert.Equal(t, len(board[0].Preparing), 4)

	// table 9 is untouched
	assert.Equal(t, len(board[1].Pending), 2)
}

func TestAdvanceEmptyBucket(t *testing.T) {
	router := newTestRouter(t)
	_ = placeOrder(t, router, "4")
	w := do(router, "POST", "/kitchen/tables/4/advance", `{"status": "READY"}`)
	assert.Equal(t, w.Code, http.StatusNotFound)
}

func TestAdvanceUnknownStatus(t *testing.T) {
	router := newTestRouter(t)
	_ = placeOrder(t, router, "4")
	w := do(router, "POST", "/kitchen/tables/4/advance", `{"status": "COOKED"}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestCloseTableGuard(t *testing.T) {
	router := newTestRouter(t)
	_ = placeOrder(t, router, "4")

	// still pending: refuse to close
	w := do(router, "POST", "/kitchen/tables/4/close", "")
	assert.Equal(t, w.Code, http.StatusConflict)

	for _, status := range []string{"PENDING", "PREPARING", "READY"} {
		w = do(router, "POST", "/kitchen/tables/4/advance", `{"status": "`+status+`"}`)
		assert.Equal(t, w.Code, http.StatusOK)
	}

	// second order arrives while the first is served
	_ = placeOrder(t, router, "4")
	w = do(router, "POST", "/kitchen/tables/4/close", "")
	assert.Equal(t, w.Code, http.StatusConflict)

	// serve the second batch, then the table closes and leaves the board
	for _, status := range []string{"PENDING", "PREPARING", "READY"} {
		_ = do(router, "POST", "/kitchen/tables/4/advance", `{"status": "`+status+`"}`)
	}
	w = do(router, "POST", "/kitchen/tables/4/close", "")
	assert.Equal(t, w.Code, http.StatusOK)

	var board []models.TableTicket
	_ = json.Unmarshal(do(router, "GET", "/kitchen/tables", "").Body.Bytes(), &board)
	assert.Equal(t, len(board), 0)

	// the paid orders are still on record
	var orders []models.Order
	_ = json.Unmarshal(do(router, "GET", "/orders", "").Body.Bytes(), &orders)
	assert.Equal(t, len(orders), 2)
}

func TestQRCodeLinks(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, "GET", "/kitchen/qrcodes?count=3&base_url=https://menu.example.com", "")
	assert.Equal(t, w.Code, http.StatusOK)

	var codes []struct {
		Table_number int    `json:"table_number"`
		Url          string `json:"url"`
		Image_url    string `json:"image_url"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &codes)
	assert.Equal(t, len(codes), 3)
	assert.Equal(t, codes[0].Url, "https://menu.example.com?table=1")
	assert.Equal(t, codes[2].Table_number, 3)
	if !strings.Contains(codes[1].Image_url, "table%3D2") {
		t.Fatalf("image url not encoded: %s", codes[1].Image_url)
	}
}

func TestOrderCreationNotifiesKitchenChat(t *testing.T) {
	router := newTestRouter(t)

	requests := make(chan *http.Request, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r
	}))
	defer server.Close()

	InitNotifier(server.URL)
	settingsMu.Lock()
	telegramConfig = models.TelegramConfig{Bot_token: "123:abc", Chat_id: "-100"}
	settingsMu.Unlock()

	_ = placeOrder(t, router, "4")

	select {
	case r := <-requests:
		text := r.URL.Query().Get("text")
		for _, want := range []string{"Table 4", "- 2x Wagyu Beef Burger", "- 1x Craft IPA", "Total: $56.00"} {
			if !strings.Contains(text, want) {
				t.Fatalf("notification missing %q: %q", want, text)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification request")
	}
}

func TestOrderCreationSucceedsWhenNotifierDown(t *testing.T) {
	router := newTestRouter(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	InitNotifier(server.URL)
	settingsMu.Lock()
	telegramConfig = models.TelegramConfig{Bot_token: "123:abc", Chat_id: "-100"}
	settingsMu.Unlock()

	order := placeOrder(t, router, "4")
	assert.Equal(t, order.Status, models.StatusPending)
}
