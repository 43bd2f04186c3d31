package services

import (
	"os"
	"path/filepath"
	"testing"

	"invtrack/internal/models"
	"invtrack/internal/testutil"
)

func TestExportCSV(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc, st := newTestService(db)

	manager := testutil.CreateTestUser(t, db, models.RoleManager)
	testutil.CreateTestItemWith(t, db, "Widget", 10, 2.50, "Hardware", 5)
	testutil.CreateTestItemWith(t, db, "Gadget", 3, 20.00, "Electronics", 0)

	path := filepath.Join(t.TempDir(), "export.csv")
	count, err := svc.ExportCSV(sessionFor(manager), path)
	testutil.AssertNoError(t, err)
	if count != 2 {
		t.Errorf("expected 2 exported items, got %d", count)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected export file: %v", err)
	}

	// Export is ungated but still audited.
	entries, err := st.AuditLog(0)
	testutil.AssertNoError(t, err)
	if len(entries) != 1 || entries[0].Action != models.ActionExportCSV {
		t.Fatalf("expected one EXPORT_CSV entry, got %v", entries)
	}
}

func TestImportCSV(t *testing.T) {
	t.Run("requires_manager", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newTestService(db)

		viewer := testutil.CreateTestUser(t, db, models.RoleViewer)

		_, err := svc.ImportCSV(sessionFor(viewer), "whatever.csv")
		testutil.AssertAppError(t, err, "PERMISSION_DENIED")
	})

	t.Run("counts_imported_and_skipped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, st := newTestService(db)

		manager := testutil.CreateTestUser(t, db, models.RoleManager)

		path := filepath.Join(t.TempDir(), "import.csv")
		content := "ID,Name,Category,Quantity,Price,LowStockThreshold\n" +
			"1,\"Widget\",\"Hardware\",10,2.50,5\n" +
			"2,\"NoPrice\",\"Hardware\",10\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		result, err := svc.ImportCSV(sessionFor(manager), path)
		testutil.AssertNoError(t, err)
		if result.Imported != 1 || result.Skipped != 1 {
			t.Errorf("expected imported=1 skipped=1, got %+v", result)
		}

		count, err := st.CountItems()
		testutil.AssertNoError(t, err)
		if count != 1 {
			t.Errorf("expected 1 item after import, got %d", count)
		}

		entries, err := st.AuditLog(0)
		testutil.AssertNoError(t, err)
		if len(entries) != 1 || entries[0].Action != models.ActionImportCSV {
			t.Fatalf("expected one IMPORT_CSV entry, got %v", entries)
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newTestService(db)

		manager := testutil.CreateTestUser(t, db, models.RoleManager)

		_, err := svc.ImportCSV(sessionFor(manager), filepath.Join(t.TempDir(), "absent.csv"))
		testutil.AssertAppError(t, err, "IMPORT_FAILED")
	})
}

func TestCSVRoundTripThroughService(t *testing.T) {
	exportDB := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, exportDB)
	exportSvc, _ := newTestService(exportDB)

	manager := testutil.CreateTestUser(t, exportDB, models.RoleManager)
	sess := sessionFor(manager)

	inputs := []ItemInput{
		{Name: "Widget", Quantity: 10, Price: 2.50, Category: "Hardware", LowStockThreshold: 5},
		{Name: "Gadget", Quantity: 0, Price: 19.99, Category: "Electronics", LowStockThreshold: 0},
		{Name: "Spare Part", Quantity: 100, Price: 0.25, Category: "Hardware", LowStockThreshold: 10},
	}
	for _, in := range inputs {
		_, err := exportSvc.AddItem(sess, in)
		testutil.AssertNoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.csv")
	_, err := exportSvc.ExportCSV(sess, path)
	testutil.AssertNoError(t, err)

	// Import into a fresh, empty store.
	importDB := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, importDB)
	importSvc, _ := newTestService(importDB)

	importManager := testutil.CreateTestUser(t, importDB, models.RoleManager)
	result, err := importSvc.ImportCSV(sessionFor(importManager), path)
	testutil.AssertNoError(t, err)
	if result.Imported != len(inputs) || result.Skipped != 0 {
		t.Fatalf("expected %d imported, got %+v", len(inputs), result)
	}

	items, err := importSvc.ListItems(SortByID, SortAsc)
	testutil.AssertNoError(t, err)
	for i, in := range inputs {
		got := items[i]
		if got.Name != in.Name || got.Category != in.Category || got.Quantity != in.Quantity ||
			got.Price != in.Price || got.LowStockThreshold != in.LowStockThreshold {
			t.Errorf("item %d mismatch after round trip: %+v vs %+v", i, got, in)
		}
	}
}
