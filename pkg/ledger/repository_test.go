package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

func TestAppendTransaction(t *testing.T) {
	root := t.TempDir()
	repo := NewFileSystemRepository(NewPathResolver(root))

	txn := "2026-08-15 * \"テスト\"\n  Expenses:食費  3000 JPY\n  Assets:現金  -3000 JPY\n"
	if err := repo.AppendTransaction("2026-08", txn, "from draft 3"); err != nil {
		t.Fatalf("AppendTransaction failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "2026", "2026-08.beancount"))
	if err != nil {
		t.Fatalf("month file not created: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "; Beancount file for 2026-08\n") {
		t.Errorf("missing file header:\n%s", content)
	}
	if !strings.Contains(content, "; from draft 3\n2026-08-15") {
		t.Errorf("missing comment line:\n%s", content)
	}

	// A second append goes to the same file without a second header.
	if err := repo.AppendTransaction("2026-08", txn); err != nil {
		t.Fatalf("second AppendTransaction failed: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(root, "2026", "2026-08.beancount"))
	if got := strings.Count(string(data), "; Beancount file for"); got != 1 {
		t.Errorf("header written %d times, want 1", got)
	}
}

func TestAppendTransactionInvalidMonth(t *testing.T) {
	repo := NewFileSystemRepository(NewPathResolver(t.TempDir()))

	for _, yearMonth := range []string{"2026", "2026-8", "08-2026", "bad"} {
		if err := repo.AppendTransaction(yearMonth, "txn"); err == nil {
			t.Errorf("AppendTransaction(%q) succeeded, want error", yearMonth)
		}
	}
}

func TestMonthFilesInYear(t *testing.T) {
	root := t.TempDir()
	repo := NewFileSystemRepository(NewPathResolver(root))

	months, err := repo.MonthFilesInYear("2026")
	if err != nil {
		t.Fatalf("MonthFilesInYear failed: %v", err)
	}
	if len(months) != 0 {
		t.Errorf("got %v for missing year, want empty", months)
	}

	for _, yearMonth := range []string{"2026-07", "2026-08"} {
		if err := repo.AppendTransaction(yearMonth, "txn"); err != nil {
			t.Fatalf("AppendTransaction failed: %v", err)
		}
	}

	months, err = repo.MonthFilesInYear("2026")
	if err != nil {
		t.Fatalf("MonthFilesInYear failed: %v", err)
	}
	if len(months) != 2 {
		t.Errorf("got %v, want two months", months)
	}
}

func TestExporterSkipsDuplicates(t *testing.T) {
	root := t.TempDir()
	repo := NewFileSystemRepository(NewPathResolver(root))
	exporter := NewExporter(newTestConverter(t), repo)

	journal := kakeibo.JournalDetail{
		ID:          1,
		Date:        "2026-08-15",
		EntryNumber: 7,
		Description: "スーパーで食材購入",
		Lines: []kakeibo.JournalLine{
			{AccountID: 12, Debit: 3000},
			{AccountID: 1, Credit: 3000},
		},
	}

	written, err := exporter.Export(journal)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !written {
		t.Error("first Export reported skipped")
	}

	written, err = exporter.Export(journal)
	if err != nil {
		t.Fatalf("second Export failed: %v", err)
	}
	if written {
		t.Error("duplicate Export reported written")
	}

	content, err := repo.ReadMonthFile("2026-08")
	if err != nil {
		t.Fatalf("ReadMonthFile failed: %v", err)
	}
	if got := strings.Count(content, "#kakeibo-7"); got != 1 {
		t.Errorf("entry written %d times, want 1", got)
	}
}

func TestExportInvalidDate(t *testing.T) {
	exporter := NewExporter(newTestConverter(t), NewFileSystemRepository(NewPathResolver(t.TempDir())))

	_, err := exporter.Export(kakeibo.JournalDetail{ID: 1, Date: "bad"})
	if err == nil {
		t.Error("Export with invalid date succeeded, want error")
	}
}
