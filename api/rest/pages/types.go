package pages

import "codeberg.org/vaidya/server/internal/catalog"

// template data shared by every page
type PageData struct {
	Title     string
	Medicines []catalog.Item
	Cart      []catalog.Item
	Total     string
}
