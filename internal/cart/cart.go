package cart

import (
	"strings"

	"tableside/internal/models"
)

// Line is a (product, quantity) pair with a denormalized snapshot of the
// product taken at add time.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
}

// Cart aggregates selected products for one session. It is never persisted;
// a restart empties every cart.
type Cart struct {
	Table string `json:"table"`
	Lines []Line `json:"lines"`
}

// AddItem inserts a qty=1 line for the product, or increments the existing
// line. At most one line per product id ever exists.
func (c *Cart) AddItem(p models.Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Qty:       1,
	})
}

// SetQuantity sets the line's quantity. Zero or below removes the line.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Qty = qty
			return
		}
	}
}

// RemoveItem drops the line for the product, if present.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart and drops the table association.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Table = ""
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Price * float64(l.Qty)
	}
	return sum
}

// Items converts the lines into the order item snapshot used at checkout.
func (c *Cart) Items() []models.OrderItem {
	items := make([]models.OrderItem, len(c.Lines))
	for i, l := range c.Lines {
		items[i] = models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Image:     l.Image,
			Qty:       l.Qty,
		}
	}
	return items
}

// ReadyForCheckout reports whether the cart may be turned into an order: a
// non-empty line list and a non-blank table.
func (c *Cart) ReadyForCheckout() bool {
	return len(c.Lines) > 0 && strings.TrimSpace(c.Table) != ""
}
