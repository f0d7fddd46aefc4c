// Package ledger writes confirmed kakeibo journal entries out as
// Beancount plain-text accounting files, one file per month under a
// year/month directory tree.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathResolver manages the layout of a Beancount ledger directory.
// The layout is {root}/{YYYY}/{YYYY-MM}.beancount.
type PathResolver struct {
	root string
}

// NewPathResolver creates a PathResolver rooted at dir.
func NewPathResolver(dir string) *PathResolver {
	return &PathResolver{root: dir}
}

// Root returns the ledger root directory.
func (p *PathResolver) Root() string {
	return p.root
}

// YearDir returns the directory path for a year.
func (p *PathResolver) YearDir(year string) string {
	return filepath.Join(p.root, year)
}

// MonthFilePath returns the file path for a month.
// yearMonth must be in YYYY-MM format.
func (p *PathResolver) MonthFilePath(yearMonth string) (string, error) {
	parts := strings.Split(yearMonth, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return "", fmt.Errorf("invalid year-month format: %s. Expected YYYY-MM", yearMonth)
	}

	return filepath.Join(p.YearDir(parts[0]), yearMonth+".beancount"), nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
