package models

import (
	"sort"
	"time"
)

// TicketLine is one display row on the kitchen board.
type TicketLine struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Notes    string `json:"notes,omitempty"`
}

// TableTicket is the kitchen view of one table: every active order at the
// table, partitioned into status buckets with the items flattened for display.
type TableTicket struct {
	Table_number int          `json:"table_number"`
	Oldest       time.Time    `json:"oldest_timestamp"`
	Item_count   int          `json:"item_count"`
	Pending      []TicketLine `json:"pending"`
	Preparing    []TicketLine `json:"preparing"`
	Ready        []TicketLine `json:"ready"`
	Served       []TicketLine `json:"served"`
	Closable     bool         `json:"closable"`
}

// ProjectTables builds the kitchen board from a flat order list. PAID orders
// are dropped, the rest are grouped by table and the tables are sorted so the
// one waiting longest comes first (ties broken by table number ascending).
// The projection is derived state and is rebuilt from scratch on every call.
func ProjectTables(orders []Order) []TableTicket {
	byTable := make(map[int][]Order)
	for _, order := range orders {
		if order.Status == StatusPaid {
			continue
		}
		byTable[order.Table_number] = append(byTable[order.Table_number], order)
	}

	tickets := make([]TableTicket, 0, len(byTable))
	for tableNumber, tableOrders := range byTable {
		// bucket item lists are concatenated in order timestamp order
		sort.SliceStable(tableOrders, func(i, j int) bool {
			return tableOrders[i].Timestamp.Before(tableOrders[j].Timestamp)
		})

		ticket := TableTicket{Table_number: tableNumber, Oldest: tableOrders[0].Timestamp}
		for _, order := range tableOrders {
			for _, item := range order.Items {
				ticket.Item_count += item.Quantity
			}
			lines := flattenItems(order.Items)
			switch order.Status {
			case StatusPending:
				ticket.Pending = append(ticket.Pending, lines...)
			case StatusPreparing:
				ticket.Preparing = append(ticket.Preparing, lines...)
			case StatusReady:
				ticket.Ready = append(ticket.Ready, lines...)
			case StatusServed:
				ticket.Served = append(ticket.Served, lines...)
			}
		}
		ticket.Closable = len(ticket.Pending) == 0 && len(ticket.Preparing) == 0 && len(ticket.Ready) == 0
		tickets = append(tickets, ticket)
	}

	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].Oldest.Equal(tickets[j].Oldest) {
			return tickets[i].Table_number < tickets[j].Table_number
		}
		return tickets[i].Oldest.Before(tickets[j].Oldest)
	})
	return tickets
}

func flattenItems(items []CartItem) []TicketLine {
	lines := make([]TicketLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, TicketLine{Quantity: item.Quantity, Name: item.Name, Notes: item.Notes})
	}
	return lines
}
