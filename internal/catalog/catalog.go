package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"codeberg.org/vaidya/server/internal/logger"
)

// reads the catalog file; a missing or malformed file yields an empty catalog
func Load(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("catalog file unavailable, serving empty catalog", "path", path, "error", err)
		return New(nil)
	}

	c, err := Parse(data)
	if err != nil {
		logger.Warn("catalog file malformed, serving empty catalog", "path", path, "error", err)
		return New(nil)
	}

	logger.Info("catalog loaded", "path", path, "items", c.Len())

	return c
}

// decodes a JSON array of product objects
func Parse(data []byte) (*Catalog, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(items), nil
}

// builds a catalog from items; the first item wins when names repeat
func New(items []Item) *Catalog {
	c := &Catalog{
		items:  make([]Item, 0, len(items)),
		byName: make(map[string]int, len(items)),
	}

	for _, item := range items {
		if item == nil {
			continue
		}

		c.items = append(c.items, item)

		name := item.Name()
		if name == "" {
			continue
		}

		if _, exists := c.byName[name]; !exists {
			c.byName[name] = len(c.items) - 1
		}
	}

	return c
}

// returns a copy of the item with the exact medicine_name
func (c *Catalog) Find(name string) (Item, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return nil, false
	}

	return c.items[idx].Clone(), true
}

// returns all items in file order
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
