package services

import (
	"sort"
	"strings"

	"invtrack/internal/models"
)

// SortField selects the item listing comparator.
type SortField int

const (
	SortByID SortField = iota
	SortByName
	SortByQuantity
	SortByPrice
	SortByCategory
)

// SortOrder selects ascending or descending listing order.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// compareItems orders two items by the given field. Name and category
// compare case-insensitively.
func compareItems(a, b *models.Item, field SortField) int {
	switch field {
	case SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByQuantity:
		return a.Quantity - b.Quantity
	case SortByPrice:
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	case SortByCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	default:
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	}
}

// sortItems sorts in place with a stable sort, so ties keep their
// original id order.
func sortItems(items []models.Item, field SortField, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		cmp := compareItems(&items[i], &items[j], field)
		if order == SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
}
