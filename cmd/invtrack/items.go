package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"invtrack/internal/services"
)

var sortFields = map[string]services.SortField{
	"id":       services.SortByID,
	"name":     services.SortByName,
	"quantity": services.SortByQuantity,
	"price":    services.SortByPrice,
	"category": services.SortByCategory,
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

func itemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage inventory items",
	}
	cmd.AddCommand(
		itemAddCmd(),
		itemUpdateCmd(),
		itemDeleteCmd(),
		itemListCmd(),
		itemSearchCmd(),
		itemCategoryCmd(),
		itemLowStockCmd(),
		itemHistoryCmd(),
	)
	return cmd
}

func itemInputFlags(cmd *cobra.Command, input *services.ItemInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "item name")
	cmd.Flags().IntVar(&input.Quantity, "quantity", 0, "quantity on hand")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "unit price")
	cmd.Flags().StringVar(&input.Category, "category", "", "category label")
	cmd.Flags().IntVar(&input.LowStockThreshold, "threshold", 0, "low-stock threshold (0 disables)")
}

func itemAddCmd() *cobra.Command {
	var input services.ItemInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			item, err := a.items.AddItem(sess, input)
			if err != nil {
				return err
			}
			fmt.Printf("Added item %d: %s\n", item.ID, item.Name)
			return nil
		},
	}
	itemInputFlags(cmd, &input)
	return cmd
}

func itemUpdateCmd() *cobra.Command {
	var input services.ItemInput
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Replace an item's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			item, err := a.items.UpdateItem(sess, id, input)
			if err != nil {
				return err
			}
			fmt.Printf("Updated item %d: %s\n", item.ID, item.Name)
			return nil
		},
	}
	itemInputFlags(cmd, &input)
	return cmd
}

func itemDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			if err := a.items.DeleteItem(sess, id); err != nil {
				return err
			}
			fmt.Println("Item deleted")
			return nil
		},
	}
}

func itemListCmd() *cobra.Command {
	var sortBy string
	var desc bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all items",
		RunE: func(cmd *cobra.Command, args []string) error {
			field, ok := sortFields[sortBy]
			if !ok {
				return fmt.Errorf("invalid sort field %q", sortBy)
			}
			order := services.SortAsc
			if desc {
				order = services.SortDesc
			}
			items, err := a.items.ListItems(field, order)
			if err != nil {
				return err
			}
			renderItems(items)
			return nil
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "id", "sort field: id, name, quantity, price, category")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func itemSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search items by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.items.SearchItems(args[0])
			if err != nil {
				return err
			}
			renderItems(items)
			return nil
		},
	}
}

func itemCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category [name]",
		Short: "List items in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.items.ItemsByCategory(args[0])
			if err != nil {
				return err
			}
			renderItems(items)
			return nil
		},
	}
}

func itemLowStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List items at or below their threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.items.LowStockItems()
			if err != nil {
				return err
			}
			renderItems(items)
			return nil
		},
	}
}

func itemHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [id]",
		Short: "Show the audit trail for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			entries, err := a.items.AuditLogForItem(id)
			if err != nil {
				return err
			}
			renderAudit(entries)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all items to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := login()
			if err != nil {
				return err
			}
			count, err := a.items.ExportCSV(sess, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d items to %s\n", count, args[0])
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import items from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			result, err := a.items.ImportCSV(sess, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d items (skipped: %d)\n", result.Imported, result.Skipped)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show inventory statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.items.Statistics()
			if err != nil {
				return err
			}
			fmt.Printf("Total items:     %d\n", stats.TotalItems)
			fmt.Printf("Total value:     $%.2f\n", stats.TotalValue)
			fmt.Printf("Low stock items: %d\n", stats.LowStockCount)
			fmt.Printf("Categories:      %d\n", len(stats.Categories))
			for _, name := range stats.Categories {
				fmt.Printf("  - %s\n", name)
			}
			return nil
		},
	}
}
