package csvio

import (
	"bytes"
	"strings"
	"testing"

	"invtrack/internal/models"
)

func TestWrite(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "Widget", Category: "Hardware", Quantity: 10, Price: 2.5, LowStockThreshold: 5},
		{ID: 2, Name: "Gadget", Category: "Electronics", Quantity: 3, Price: 19.999, LowStockThreshold: 0},
	}

	var buf bytes.Buffer
	if err := Write(&buf, items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ID,Name,Category,Quantity,Price,LowStockThreshold\n" +
		"1,\"Widget\",\"Hardware\",10,2.50,5\n" +
		"2,\"Gadget\",\"Electronics\",3,20.00,0\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestParseLine(t *testing.T) {
	t.Run("well_formed", func(t *testing.T) {
		row, ok := ParseLine(`7,"Widget","Hardware",10,2.50,5`)
		if !ok {
			t.Fatal("expected line to parse")
		}
		if row.Name != "Widget" || row.Category != "Hardware" ||
			row.Quantity != 10 || row.Price != 2.50 || row.LowStockThreshold != 5 {
			t.Errorf("parsed mismatch: %+v", row)
		}
	})

	t.Run("missing_threshold_defaults_to_zero", func(t *testing.T) {
		row, ok := ParseLine(`7,"Widget","Hardware",10,2.50`)
		if !ok {
			t.Fatal("expected line to parse")
		}
		if row.LowStockThreshold != 0 {
			t.Errorf("expected threshold 0, got %d", row.LowStockThreshold)
		}
	})

	t.Run("negative_quantity", func(t *testing.T) {
		row, ok := ParseLine(`3,"Backordered","Hardware",-4,1.00,0`)
		if !ok {
			t.Fatal("expected line to parse")
		}
		if row.Quantity != -4 {
			t.Errorf("expected quantity -4, got %d", row.Quantity)
		}
	})

	malformed := []struct {
		name string
		line string
	}{
		{"missing_price", `7,"Widget","Hardware",10`},
		{"unquoted_name", `7,Widget,"Hardware",10,2.50,5`},
		{"empty_name", `7,"","Hardware",10,2.50,5`},
		{"missing_id", `"Widget","Hardware",10,2.50,5`},
		{"blank", ``},
		{"garbage", `not,a,csv,row`},
	}
	for _, tc := range malformed {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := ParseLine(tc.line); ok {
				t.Errorf("expected %q to be rejected", tc.line)
			}
		})
	}
}

func TestRead(t *testing.T) {
	t.Run("skips_header_and_counts_malformed", func(t *testing.T) {
		input := "ID,Name,Category,Quantity,Price,LowStockThreshold\n" +
			"1,\"Widget\",\"Hardware\",10,2.50,5\n" +
			"2,\"Broken\",\"Hardware\",10\n"

		rows, skipped, err := Read(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("expected 1 imported row, got %d", len(rows))
		}
		if skipped != 1 {
			t.Errorf("expected 1 skipped row, got %d", skipped)
		}
	})

	t.Run("empty_file", func(t *testing.T) {
		_, _, err := Read(strings.NewReader(""))
		if err == nil {
			t.Fatal("expected error for empty file")
		}
	})

	t.Run("header_only", func(t *testing.T) {
		rows, skipped, err := Read(strings.NewReader("ID,Name,Category,Quantity,Price,LowStockThreshold\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 || skipped != 0 {
			t.Errorf("expected empty result, got %d rows, %d skipped", len(rows), skipped)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "Widget", Category: "Hardware", Quantity: 10, Price: 2.50, LowStockThreshold: 5},
		{ID: 2, Name: "Gadget", Category: "Electronics", Quantity: 0, Price: 0, LowStockThreshold: 0},
		{ID: 3, Name: "Spare Part", Category: "Hardware", Quantity: 100, Price: 0.25, LowStockThreshold: 10},
	}

	var buf bytes.Buffer
	if err := Write(&buf, items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, skipped, err := Read(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected no skipped rows, got %d", skipped)
	}
	if len(rows) != len(items) {
		t.Fatalf("expected %d rows, got %d", len(items), len(rows))
	}
	for i, row := range rows {
		it := items[i]
		if row.Name != it.Name || row.Category != it.Category || row.Quantity != it.Quantity ||
			row.Price != it.Price || row.LowStockThreshold != it.LowStockThreshold {
			t.Errorf("row %d mismatch: %+v vs %+v", i, row, it)
		}
	}
}
