package ledger

import (
	"fmt"
	"strings"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/accounts"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

// Transaction represents a Beancount transaction.
type Transaction struct {
	Date      string
	Narration string
	Tags      []string
	Postings  []Posting
}

// Posting represents one posting in a Beancount transaction.
type Posting struct {
	Account  string
	Amount   int64
	Currency string
	Comment  string
}

// Converter builds Beancount transactions from kakeibo journal entries.
type Converter struct {
	mapper   *accounts.Mapper
	currency string
}

// NewConverter creates a Converter. An empty currency defaults to JPY.
func NewConverter(mapper *accounts.Mapper, currency string) *Converter {
	if currency == "" {
		currency = "JPY"
	}
	return &Converter{mapper: mapper, currency: currency}
}

// typeRoots maps account mapping types to Beancount account roots.
var typeRoots = map[string]string{
	"asset":     "Assets",
	"liability": "Liabilities",
	"equity":    "Equity",
	"income":    "Income",
	"expense":   "Expenses",
}

// accountFor resolves a kakeibo account ID to a Beancount account name.
// IDs without a mapping land under Expenses:Unmapped.
func (c *Converter) accountFor(id int64) string {
	account, ok := c.mapper.Lookup(id)
	if !ok {
		return fmt.Sprintf("Expenses:Unmapped:Account%d", id)
	}

	root, ok := typeRoots[account.Type]
	if !ok {
		root = "Expenses"
	}
	return root + ":" + sanitizeAccountName(account.Name)
}

// ConvertJournal converts a journal entry to a Beancount transaction.
// Debits are positive, credits negative.
func (c *Converter) ConvertJournal(journal kakeibo.JournalDetail) Transaction {
	postings := make([]Posting, 0, len(journal.Lines))
	for _, line := range journal.Lines {
		amount := line.Debit
		if line.Credit > 0 {
			amount = -line.Credit
		}
		postings = append(postings, Posting{
			Account:  c.accountFor(line.AccountID),
			Amount:   amount,
			Currency: c.currency,
			Comment:  line.Description,
		})
	}

	var tags []string
	if journal.EntryNumber > 0 {
		tags = []string{fmt.Sprintf("kakeibo-%d", journal.EntryNumber)}
	}

	return Transaction{
		Date:      journal.Date,
		Narration: buildNarration(journal),
		Tags:      tags,
		Postings:  postings,
	}
}

// FormatTransaction formats a transaction as Beancount text.
func (c *Converter) FormatTransaction(txn Transaction) string {
	var sb strings.Builder

	sb.WriteString(txn.Date)
	sb.WriteString(" *")
	sb.WriteString(fmt.Sprintf(" %q", txn.Narration))
	if len(txn.Tags) > 0 {
		sb.WriteString(" #")
		sb.WriteString(strings.Join(txn.Tags, " #"))
	}
	sb.WriteString("\n")

	for _, posting := range txn.Postings {
		sb.WriteString("  ")
		sb.WriteString(posting.Account)

		// Right-align amounts the way bean-format does.
		spaces := 60 - len(posting.Account)
		if spaces < 1 {
			spaces = 1
		}
		sb.WriteString(strings.Repeat(" ", spaces))
		sb.WriteString(fmt.Sprintf("%d %s", posting.Amount, posting.Currency))

		if posting.Comment != "" {
			sb.WriteString(" ; ")
			sb.WriteString(posting.Comment)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func sanitizeAccountName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

func buildNarration(journal kakeibo.JournalDetail) string {
	if journal.Description != "" {
		return journal.Description
	}
	for _, line := range journal.Lines {
		if line.Description != "" {
			return line.Description
		}
	}
	return "仕訳"
}
