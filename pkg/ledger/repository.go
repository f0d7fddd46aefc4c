package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Repository defines Beancount ledger file operations.
type Repository interface {
	// AppendTransaction appends a transaction to a monthly file.
	AppendTransaction(yearMonth, transaction string, comment ...string) error

	// ReadMonthFile reads the content of a monthly file.
	ReadMonthFile(yearMonth string) (string, error)

	// MonthFileExists checks if a monthly file exists.
	MonthFileExists(yearMonth string) bool

	// MonthFilesInYear lists the monthly files of a year.
	MonthFilesInYear(year string) ([]string, error)
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	paths *PathResolver
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(paths *PathResolver) *FileSystemRepository {
	return &FileSystemRepository{paths: paths}
}

// AppendTransaction appends a transaction to a monthly file, creating
// the file with a header if it doesn't exist yet. An optional comment
// is written as a Beancount comment line above the transaction.
func (r *FileSystemRepository) AppendTransaction(yearMonth, transaction string, comment ...string) error {
	filePath, err := r.paths.MonthFilePath(yearMonth)
	if err != nil {
		return fmt.Errorf("failed to get month file path: %w", err)
	}

	if err := r.ensureMonthFile(yearMonth); err != nil {
		return fmt.Errorf("failed to ensure month file: %w", err)
	}

	var content string
	if len(comment) > 0 && comment[0] != "" {
		content += fmt.Sprintf("; %s\n", comment[0])
	}
	content += transaction
	if len(transaction) > 0 && transaction[len(transaction)-1] != '\n' {
		content += "\n"
	}
	content += "\n"

	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file for appending: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}

// ReadMonthFile reads the content of a monthly file.
// Returns an empty string if the file doesn't exist.
func (r *FileSystemRepository) ReadMonthFile(yearMonth string) (string, error) {
	filePath, err := r.paths.MonthFilePath(yearMonth)
	if err != nil {
		return "", fmt.Errorf("failed to get month file path: %w", err)
	}

	if !r.paths.FileExists(filePath) {
		return "", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(data), nil
}

// MonthFileExists checks if a monthly file exists.
func (r *FileSystemRepository) MonthFileExists(yearMonth string) bool {
	filePath, err := r.paths.MonthFilePath(yearMonth)
	if err != nil {
		return false
	}
	return r.paths.FileExists(filePath)
}

// MonthFilesInYear lists the monthly files of a year as YYYY-MM keys.
func (r *FileSystemRepository) MonthFilesInYear(year string) ([]string, error) {
	yearDir := r.paths.YearDir(year)
	if !r.paths.FileExists(yearDir) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read year directory: %w", err)
	}

	var monthFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".beancount" {
			monthFiles = append(monthFiles, name[:len(name)-len(".beancount")])
		}
	}

	return monthFiles, nil
}

func (r *FileSystemRepository) ensureMonthFile(yearMonth string) error {
	filePath, err := r.paths.MonthFilePath(yearMonth)
	if err != nil {
		return fmt.Errorf("failed to get month file path: %w", err)
	}

	if r.paths.FileExists(filePath) {
		return nil
	}

	if err := r.paths.EnsureParentDir(filePath); err != nil {
		return fmt.Errorf("failed to ensure parent directory: %w", err)
	}

	header := fmt.Sprintf("; Beancount file for %s\n; Generated at %s\n\n",
		yearMonth, time.Now().Format(time.RFC3339))
	if err := os.WriteFile(filePath, []byte(header), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
