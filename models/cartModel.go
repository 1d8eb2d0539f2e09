package models

import "github.com/google/uuid"

// CartItem is a snapshot of a menu item inside a cart or an order. Name and
// price are frozen when the line is created, so later menu edits never touch
// carts or historical orders.
type CartItem struct {
	Cart_item_id string  `json:"cart_item_id"`
	Menu_item_id string  `json:"menu_item_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Notes        string  `json:"notes,omitempty"`
	Image        string  `json:"image,omitempty"`
}

// Cart holds the lines of one table's pending order. Lines are keyed by the
// underlying menu item id: at most one line exists per distinct item.
type Cart struct {
	Table_number int        `json:"table_number"`
	Items        []CartItem `json:"items"`
}

// AddItem merges one unit of the given menu item into the cart.
func (cart *Cart) AddItem(item MenuItem, notes string) {
	for i := range cart.Items {
		if cart.Items[i].Menu_item_id == item.Menu_item_id {
			cart.Items[i].Quantity++
			if notes != "" {
				cart.Items[i].Notes = notes
			}
			return
		}
	}
	cart.Items = append(cart.Items, CartItem{
		Cart_item_id: uuid.NewString(),
		Menu_item_id: item.Menu_item_id,
		Name:         item.Name,
		Price:        item.Price,
		Quantity:     1,
		Notes:        notes,
		Image:        item.Image,
	})
}

// SetQuantity sets the line quantity for a menu item. A quantity of zero or
// less removes the line entirely, a cart never carries an empty line.
func (cart *Cart) SetQuantity(menuItemId string, quantity int) {
	for i := range cart.Items {
		if cart.Items[i].Menu_item_id != menuItemId {
			continue
		}
		if quantity <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		return
	}
}

func (cart *Cart) Clear() {
	cart.Items = nil
}

// Total is the running sum of price times quantity over all lines.
func (cart *Cart) Total() float64 {
	var sum float64
	for _, item := range cart.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Count is the total number of units across all lines.
func (cart *Cart) Count() int {
	var n int
	for _, item := range cart.Items {
		n += item.Quantity
	}
	return n
}
