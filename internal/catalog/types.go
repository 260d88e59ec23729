package catalog

import "fmt"

// one product record; extra fields pass through to templates untouched
type Item map[string]any

// returns the medicine_name field, or "" when missing or not a string
func (i Item) Name() string {
	name, _ := i["medicine_name"].(string)
	return name
}

// returns the display price such as "₹1,250"
func (i Item) Price() string {
	switch p := i["price"].(type) {
	case string:
		return p
	case float64:
		return fmt.Sprintf("%v", p)
	default:
		return ""
	}
}

// returns a shallow copy so cart entries never alias the catalog
func (i Item) Clone() Item {
	out := make(Item, len(i))
	for k, v := range i {
		out[k] = v
	}
	return out
}

// read-only product list loaded once at startup
type Catalog struct {
	items  []Item
	byName map[string]int
}
