package ledger

import (
	"fmt"
	"strings"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

// Exporter writes journal entries into monthly Beancount files.
// Entries already present in the target file are skipped, keyed by
// their entry-number tag.
type Exporter struct {
	converter *Converter
	repo      Repository
}

// NewExporter creates an Exporter.
func NewExporter(converter *Converter, repo Repository) *Exporter {
	return &Exporter{converter: converter, repo: repo}
}

// Export appends one journal entry to its monthly file.
// It reports whether the entry was written (false means it was
// already there).
func (e *Exporter) Export(journal kakeibo.JournalDetail) (bool, error) {
	if len(journal.Date) < 7 {
		return false, fmt.Errorf("journal %d has invalid date: %q", journal.ID, journal.Date)
	}
	yearMonth := journal.Date[:7]

	tag := fmt.Sprintf("#kakeibo-%d", journal.EntryNumber)
	content, err := e.repo.ReadMonthFile(yearMonth)
	if err != nil {
		return false, fmt.Errorf("failed to read month file: %w", err)
	}
	if strings.Contains(content, tag) {
		return false, nil
	}

	txn := e.converter.ConvertJournal(journal)
	if err := e.repo.AppendTransaction(yearMonth, e.converter.FormatTransaction(txn)); err != nil {
		return false, fmt.Errorf("failed to append transaction: %w", err)
	}

	return true, nil
}
