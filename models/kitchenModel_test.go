package models

import (
	"testing"
	"time"

	"gopkg.in/go-playground/assert.v1"
)

func orderAt(id string, table int, status OrderStatus, ts time.Time, items ...CartItem) Order {
	if len(items) == 0 {
		items = []CartItem{{Name: "Artisan Espresso", Price: 4, Quantity: 1}}
	}
	order, _ := NewOrder(id, table, items, ts)
	order.Status = status
	return order
}

func TestProjectTablesDropsPaidOrders(t *testing.T) {
	now := time.Now()
	tickets := ProjectTables([]Order{
		orderAt("1", 1, StatusPaid, now),
		orderAt("2", 2, StatusPending, now),
	})
	assert.Equal(t, len(tickets), 1)
	assert.Equal(t, tickets[0].Table_number, 2)
}

func TestProjectTablesEveryActiveTableAppearsOnce(t *testing.T) {
	now := time.Now()
	tickets := ProjectTables([]Order{
		orderAt("1", 3, StatusPending, now),
		orderAt("2", 3, StatusPreparing, now.Add(time.Minute)),
		orderAt("3", 5, StatusServed, now),
	})
	assert.Equal(t, len(tickets), 2)
	seen := map[int]int{}
	for _, ticket := range tickets {
		seen[ticket.Table_number]++
	}
	assert.Equal(t, seen[3], 1)
	assert.Equal(t, seen[5], 1)
}

func TestProjectTablesOrdersByOldestActiveOrder(t *testing.T) {
	base := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	tickets := ProjectTables([]Order{
		orderAt("1", 7, StatusPending, base.Add(10*time.Minute)),
		orderAt("2", 2, StatusPending, base), // waiting longest
		orderAt("3", 4, StatusPending, base.Add(5*time.Minute)),
	})
	assert.Equal(t, tickets[0].Table_number, 2)
	assert.Equal(t, tickets[1].Table_number, 4)
	assert.Equal(t, tickets[2].Table_number, 7)
}

func TestProjectTablesTieBreaksByTableNumber(t *testing.T) {
	ts := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	tickets := ProjectTables([]Order{
		orderAt("1", 9, StatusPending, ts),
		orderAt("2", 3, StatusPending, ts),
	})
	assert.Equal(t, tickets[0].Table_number, 3)
	assert.Equal(t, tickets[1].Table_number, 9)
}

func TestProjectTablesBucketsAndFlattensItems(t *testing.T) {
	base := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	first := orderAt("1", 4, StatusPending, base,
		CartItem{Name: "Wagyu Beef Burger", Price: 24, Quantity: 2},
	)
	second := orderAt("2", 4, StatusPending, base.Add(time.Minute),
		CartItem{Name: "Craft IPA", Price: 8, Quantity: 1},
		CartItem{Name: "Spicy Calamari", Price: 14, Quantity: 1},
	)
	cooking := orderAt("3", 4, StatusPreparing, base.Add(2*time.Minute),
		CartItem{Name: "Pan-Seared Salmon", Price: 26, Quantity: 1},
	)

	// deliberately out of timestamp order
	tickets := ProjectTables([]Order{second, cooking, first})
	assert.Equal(t, len(tickets), 1)

	ticket := tickets[0]
	assert.Equal(t, len(ticket.Pending), 3)
	assert.Equal(t, ticket.Pending[0].Name, "Wagyu Beef Burger")
	assert.Equal(t, ticket.Pending[0].Quantity, 2)
	assert.Equal(t, ticket.Pending[1].Name, "Craft IPA")
	assert.Equal(t, ticket.Pending[2].Name, "Spicy Calamari")
	assert.Equal(t, len(ticket.Preparing), 1)
	assert.Equal(t, len(ticket.Ready), 0)
	assert.Equal(t, ticket.Item_count, 5)
	assert.Equal(t, ticket.Oldest, base)
}

func TestClosablePredicate(t *testing.T) {
	now := time.Now()

	served := ProjectTables([]Order{orderAt("1", 1, StatusServed, now)})
	assert.Equal(t, served[0].Closable, true)

	for _, status := range []OrderStatus{StatusPending, StatusPreparing, StatusReady} {
		tickets := ProjectTables([]Order{
			orderAt("1", 1, StatusServed, now),
			orderAt("2", 1, status, now),
		})
		assert.Equal(t, tickets[0].Closable, false)
	}
}

func TestProjectTablesEmptyInput(t *testing.T) {
	assert.Equal(t, len(ProjectTables(nil)), 0)
}
