package models

// CartLine is one cart entry. The persisted shape is the {"id","qty"}
// record; a line never exists with a quantity below 1.
type CartLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"qty"`
}

// Cart is the ordered list of lines for one visitor, oldest first.
// It is persisted as a whole JSON array under a single storage key.
type Cart []CartLine

// Find returns the index of the line for productID, or -1.
func (c Cart) Find(productID string) int {
	for i, line := range c {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// Count is the sum of all line quantities. Negative quantities count
// as zero, matching the lenient tally the cart badge has always shown.
func (c Cart) Count() int {
	total := 0
	for _, line := range c {
		if line.Quantity > 0 {
			total += line.Quantity
		}
	}
	return total
}

// Clone returns a copy the caller can mutate without aliasing the original.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
