package cart

// Line is one cart entry. Two lines occupy the same slot iff pizza, size and
// extras set are all equal; adding a matching line bumps the quantity instead
// of appending.
type Line struct {
	PizzaID   uint     `json:"pizzaId"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Size      string   `json:"size"`
	Extras    []string `json:"extras"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
}

// Cart accumulates line items for a single browsing session ahead of
// checkout. It is a plain value object mutated by one actor at a time and is
// never persisted.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddLine merges the line into an existing slot with the same
// (pizza, size, extras) key, or appends it as a new line.
func (c *Cart) AddLine(line Line) {
	for i := range c.lines {
		if c.lines[i].PizzaID == line.PizzaID &&
			c.lines[i].Size == line.Size &&
			sameExtras(c.lines[i].Extras, line.Extras) {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// UpdateQuantity sets the quantity on every line with the given pizza id.
// Note it does not disambiguate by size or extras: two lines for the same
// pizza in different sizes are both updated. This mirrors the storefront
// cart's behavior and is deliberately left as observed.
func (c *Cart) UpdateQuantity(pizzaID uint, quantity int) {
	for i := range c.lines {
		if c.lines[i].PizzaID == pizzaID {
			c.lines[i].Quantity = quantity
		}
	}
}

// RemoveLine deletes all lines with the given pizza id.
func (c *Cart) RemoveLine(pizzaID uint) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.PizzaID != pizzaID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// sameExtras compares extras as sets, so topping order does not split a
// slot into two lines.
func sameExtras(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, extra := range a {
		seen[extra]++
	}
	for _, extra := range b {
		seen[extra]--
		if seen[extra] < 0 {
			return false
		}
	}
	return true
}
