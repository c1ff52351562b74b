package cart

import "sustainsports-be/internal/catalog"

// Line is one cart entry: a product snapshot captured at add time plus a
// quantity. Totals use the captured price, not a live catalog read.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	EcoTag    string  `json:"ecoTag,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is the client-held aggregate, keyed by product id. Lines keep their
// insertion order so the view is stable across reloads.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges the product into an existing line by id, summing quantities, or
// appends a new line. Quantities below one count as one.
func (c *Cart) Add(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity += qty
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		EcoTag:    p.EcoTag,
		Quantity:  qty,
	})
}

// Remove deletes the line for the product entirely.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites a line's quantity, clamped to a minimum of one.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Total sums captured price times quantity across lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count sums quantities across lines (the cart badge number).
func (c *Cart) Count() int {
	var count int
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
