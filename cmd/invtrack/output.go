package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"invtrack/internal/models"
)

func newTable(headers ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row(headers))
	return t
}

func renderItems(items []models.Item) {
	if len(items) == 0 {
		fmt.Println("No items found")
		return
	}
	t := newTable("ID", "Name", "Category", "Quantity", "Price", "Low Stock")
	for _, it := range items {
		low := ""
		if it.IsLowStock() {
			low = "LOW"
		}
		t.AppendRow(table.Row{it.ID, it.Name, it.Category, it.Quantity, fmt.Sprintf("$%.2f", it.Price), low})
	}
	t.Render()
	fmt.Printf("Total: %d items\n", len(items))
}

func renderUsers(users []models.User) {
	t := newTable("ID", "Username", "Role", "Created")
	for _, u := range users {
		t.AppendRow(table.Row{u.ID, u.Username, u.Role, u.CreatedAt.Format("2006-01-02 15:04:05")})
	}
	t.Render()
}

func renderAudit(entries []models.AuditLog) {
	if len(entries) == 0 {
		fmt.Println("No audit entries found")
		return
	}
	t := newTable("ID", "User", "Action", "Item", "Details", "Timestamp")
	for _, e := range entries {
		t.AppendRow(table.Row{e.ID, e.UserID, e.Action, e.ItemID, e.Details, e.Timestamp.Format("2006-01-02 15:04:05")})
	}
	t.Render()
}
