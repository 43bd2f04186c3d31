package services

import (
	"fmt"
	"os"
	"strings"

	"invtrack/internal/auth"
	"invtrack/internal/csvio"
	apperrors "invtrack/internal/errors"
	"invtrack/internal/logger"
	"invtrack/internal/models"
	"invtrack/internal/store"
	"invtrack/internal/validate"
)

// itemService orchestrates the store, authorization and audit trail
// into the operations the application layer invokes.
type itemService struct {
	store           *store.Store
	authz           *auth.Service
	audit           AuditServicer
	defaultCategory string
}

// NewItemService creates a new ItemServicer. Blank item categories
// default to defaultCategory.
func NewItemService(st *store.Store, authz *auth.Service, audit AuditServicer, defaultCategory string) ItemServicer {
	if defaultCategory == "" {
		defaultCategory = "Uncategorized"
	}
	return &itemService{
		store:           st,
		authz:           authz,
		audit:           audit,
		defaultCategory: defaultCategory,
	}
}

// normalize applies the default category to a blank label.
func (s *itemService) normalize(input ItemInput) store.ItemFields {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = s.defaultCategory
	}
	return store.ItemFields{
		Name:              input.Name,
		Quantity:          input.Quantity,
		Price:             input.Price,
		Category:          category,
		LowStockThreshold: input.LowStockThreshold,
	}
}

// registerCategory records the label as a side effect of an item write.
// Only caller-supplied labels are registered; the blank-default is not.
func (s *itemService) registerCategory(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	if _, err := s.store.EnsureCategory(name); err != nil {
		logger.Get().Warnw("failed to register category", "error", err, "category", name)
	}
}

// AddItem creates an item. Requires manager.
func (s *itemService) AddItem(sess *auth.Session, input ItemInput) (*models.Item, error) {
	if !s.authz.HasPermission(sess, models.RoleManager) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	item, err := s.store.AddItem(s.normalize(input))
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Added item: %s (Qty: %d, Price: %.2f)", item.Name, item.Quantity, item.Price)
	s.audit.Record(sess.UserID, models.ActionAddItem, item.ID, details)
	s.registerCategory(input.Category)

	return item, nil
}

// UpdateItem replaces an item's mutable fields. Requires manager.
func (s *itemService) UpdateItem(sess *auth.Session, id uint, input ItemInput) (*models.Item, error) {
	if !s.authz.HasPermission(sess, models.RoleManager) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	item, err := s.store.UpdateItem(id, s.normalize(input))
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Updated item: %s (Qty: %d, Price: %.2f)", item.Name, item.Quantity, item.Price)
	s.audit.Record(sess.UserID, models.ActionUpdateItem, item.ID, details)
	s.registerCategory(input.Category)

	return item, nil
}

// DeleteItem removes an item permanently. Requires admin.
func (s *itemService) DeleteItem(sess *auth.Session, id uint) error {
	if !s.authz.HasPermission(sess, models.RoleAdmin) {
		return apperrors.ErrPermissionDenied
	}

	item, err := s.store.GetItem(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteItem(id); err != nil {
		return err
	}

	details := fmt.Sprintf("Deleted item: %s (ID: %d)", item.Name, item.ID)
	s.audit.Record(sess.UserID, models.ActionDeleteItem, id, details)
	return nil
}

// GetItem retrieves a single item.
func (s *itemService) GetItem(id uint) (*models.Item, error) {
	return s.store.GetItem(id)
}

// ListItems materializes all items and sorts them by the given field
// and order with a stable sort.
func (s *itemService) ListItems(field SortField, order SortOrder) ([]models.Item, error) {
	items, err := s.store.AllItems()
	if err != nil {
		return nil, err
	}
	sortItems(items, field, order)
	return items, nil
}

// SearchItems returns items whose name contains the query.
func (s *itemService) SearchItems(query string) ([]models.Item, error) {
	return s.store.SearchItems(query)
}

// ItemsByCategory returns items with an exact category match.
func (s *itemService) ItemsByCategory(category string) ([]models.Item, error) {
	return s.store.ItemsByCategory(category)
}

// LowStockItems returns items at or below their threshold, worst first.
func (s *itemService) LowStockItems() ([]models.Item, error) {
	return s.store.LowStockItems()
}

// ExportCSV writes every item to path and returns the exported count.
// Not permission-gated, but still audited.
func (s *itemService) ExportCSV(sess *auth.Session, path string) (int, error) {
	items, err := s.store.AllItems()
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}
	defer f.Close()

	if err := csvio.Write(f, items); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	var userID uint
	if sess != nil {
		userID = sess.UserID
	}
	details := fmt.Sprintf("Exported %d items to CSV: %s", len(items), path)
	s.audit.Record(userID, models.ActionExportCSV, 0, details)

	return len(items), nil
}

// ImportCSV inserts every parseable row of the file as a new item,
// counting unparseable rows as skipped. Requires manager.
func (s *itemService) ImportCSV(sess *auth.Session, path string) (ImportResult, error) {
	if !s.authz.HasPermission(sess, models.RoleManager) {
		return ImportResult{}, apperrors.ErrPermissionDenied
	}

	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, apperrors.Wrap(apperrors.ErrImportFailed, err)
	}
	defer f.Close()

	rows, skipped, err := csvio.Read(f)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Skipped: skipped}
	for _, row := range rows {
		_, err := s.store.AddItem(store.ItemFields{
			Name:              row.Name,
			Quantity:          row.Quantity,
			Price:             row.Price,
			Category:          row.Category,
			LowStockThreshold: row.LowStockThreshold,
		})
		if err != nil {
			result.Skipped++
			continue
		}
		result.Imported++
		s.registerCategory(row.Category)
	}

	details := fmt.Sprintf("Imported %d items from CSV: %s (skipped: %d)", result.Imported, path, result.Skipped)
	s.audit.Record(sess.UserID, models.ActionImportCSV, 0, details)

	return result, nil
}

// Statistics aggregates totals via direct store queries.
func (s *itemService) Statistics() (*Statistics, error) {
	totalItems, err := s.store.CountItems()
	if err != nil {
		return nil, err
	}
	totalValue, err := s.store.TotalValue()
	if err != nil {
		return nil, err
	}
	lowStock, err := s.store.LowStockCount()
	if err != nil {
		return nil, err
	}
	categories, err := s.store.AllCategories()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}

	return &Statistics{
		TotalItems:    totalItems,
		TotalValue:    totalValue,
		LowStockCount: lowStock,
		Categories:    names,
	}, nil
}

// AuditLog returns the most recent audit entries, newest first.
func (s *itemService) AuditLog(limit int) ([]models.AuditLog, error) {
	return s.store.AuditLog(limit)
}

// AuditLogForItem returns every audit entry for one item, newest first.
func (s *itemService) AuditLogForItem(itemID uint) ([]models.AuditLog, error) {
	return s.store.AuditLogForItem(itemID)
}
