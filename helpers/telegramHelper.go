package helpers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tableswift/models"
)

const DefaultTelegramAPIBase = "https://api.telegram.org"

// TelegramNotifier delivers order notifications to the kitchen chat. Delivery
// is strictly best-effort: one attempt per order, no retry, and the caller of
// Dispatch is never blocked on, or informed of, the outcome. A single worker
// goroutine drains the queue so sends go out sequentially.
type TelegramNotifier struct {
	mu      sync.Mutex
	baseURL string
	Client  *http.Client
	queue   chan queuedNotification
}

type queuedNotification struct {
	order  models.Order
	config models.TelegramConfig
}

func NewTelegramNotifier(baseURL string) *TelegramNotifier {
	n := &TelegramNotifier{
		Client: &http.Client{Timeout: 10 * time.Second},
		queue:  make(chan queuedNotification, 64),
	}
	n.SetBaseURL(baseURL)
	go n.run()
	return n
}

// SetBaseURL redirects future sends, the worker goroutine is kept. An empty
// URL falls back to the real bot API.
func (n *TelegramNotifier) SetBaseURL(baseURL string) {
	if baseURL == "" {
		baseURL = DefaultTelegramAPIBase
	}
	n.mu.Lock()
	n.baseURL = baseURL
	n.mu.Unlock()
}

func (n *TelegramNotifier) base() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.baseURL
}

func (n *TelegramNotifier) run() {
	for q := range n.queue {
		if err := n.send(q.order, q.config); err != nil {
			log.Printf("telegram notification for order #%s failed: %v", q.order.ShortRef(), err)
		}
	}
}

// Dispatch queues one delivery attempt for the order. With missing credentials
// this is a configured no-op, logged and skipped without error.
func (n *TelegramNotifier) Dispatch(order models.Order, config models.TelegramConfig) {
	if !config.Enabled() {
		log.Printf("telegram not configured, skipping notification for order #%s", order.ShortRef())
		return
	}
	select {
	case n.queue <- queuedNotification{order: order, config: config}:
	default:
		log.Printf("notification queue full, dropping order #%s", order.ShortRef())
	}
}

func (n *TelegramNotifier) send(order models.Order, config models.TelegramConfig) error {
	message := FormatOrderMessage(order)
	requestUrl := fmt.Sprintf(
		"%s/bot%s/sendMessage?chat_id=%s&text=%s&parse_mode=HTML",
		n.base(),
		config.Bot_token,
		url.QueryEscape(config.Chat_id),
		url.QueryEscape(message),
	)
	resp, err := n.Client.Get(requestUrl)
	if err != nil {
		return err
	}
	// Success is "the request was dispatched". The bot API response is not
	// inspected, the channel may be used in a mode where it cannot be read.
	resp.Body.Close()
	return nil
}

// FormatOrderMessage renders the kitchen chat summary: title, table line,
// short order reference, one line per item, total at two decimal places.
func FormatOrderMessage(order models.Order) string {
	var b strings.Builder
	b.WriteString("🍽 <b>New Order Received!</b>\n")
	fmt.Fprintf(&b, "📍 <b>Table %d</b>\n", order.Table_number)
	fmt.Fprintf(&b, "Order ID: #%s\n\n", order.ShortRef())
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %dx %s\n", item.Quantity, item.Name)
	}
	fmt.Fprintf(&b, "\n💰 <b>Total: $%.2f</b>", order.Total_amount)
	return b.String()
}
