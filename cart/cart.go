// Package cart implements the client-resident shopping bag: a list of
// line items keyed by (product, size, color), merged in memory and kept
// out of the server entirely until checkout.
package cart

// LineItem is one entry in the bag. Two additions with the same
// (ProductID, Size, Color) merge into one line; a different size or
// color of the same product is a distinct line.
type LineItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// AddItem returns a new list with item merged in. An existing line with
// the same (ProductID, Size, Color) has its quantity incremented;
// otherwise the item is appended. Quantities below 1 count as 1.
func AddItem(items []LineItem, item LineItem) []LineItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range items {
		if sameLine(items[i], item.ProductID, item.Size, item.Color) {
			out := clone(items)
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(clone(items), item)
}

// UpdateQuantity adjusts the matching line by delta, clamped at 1. It
// never removes a line; RemoveItem is the only removal path.
func UpdateQuantity(items []LineItem, productID uint, size string, delta int) []LineItem {
	out := clone(items)
	for i := range out {
		if out[i].ProductID == productID && out[i].Size == size {
			q := out[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			out[i].Quantity = q
		}
	}
	return out
}

// RemoveItem drops every line matching (productID, size).
func RemoveItem(items []LineItem, productID uint, size string) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == productID && it.Size == size {
			continue
		}
		out = append(out, it)
	}
	return out
}

// ComputeTotals sums unit price times quantity and adds the flat
// shipping charge.
func ComputeTotals(items []LineItem, shipping float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

func sameLine(it LineItem, productID uint, size, color string) bool {
	return it.ProductID == productID && it.Size == size && it.Color == color
}

func clone(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
