// Package accounts maps human-readable account names to kakeibo account IDs.
package accounts

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Account represents one account in the mapping file.
type Account struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"` // asset, liability, equity, income or expense
}

// MappingConfig represents the account mapping configuration file.
type MappingConfig struct {
	Accounts []Account `yaml:"accounts"`
}

// Mapper resolves account names to account IDs and back.
type Mapper struct {
	byName map[string]int64
	byID   map[int64]Account
}

// NewMapper creates a new Mapper from a YAML configuration file.
func NewMapper(configPath string) (*Mapper, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read account mapping file: %w", err)
	}
	return NewMapperFromYAML(data)
}

// NewMapperFromYAML creates a new Mapper from YAML data.
func NewMapperFromYAML(data []byte) (*Mapper, error) {
	var config MappingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse account mapping: %w", err)
	}

	byName := make(map[string]int64, len(config.Accounts))
	byID := make(map[int64]Account, len(config.Accounts))
	for _, account := range config.Accounts {
		if account.Name == "" {
			return nil, fmt.Errorf("account mapping entry with id %d has no name", account.ID)
		}
		if _, exists := byName[account.Name]; exists {
			return nil, fmt.Errorf("duplicate account name in mapping: %s", account.Name)
		}
		byName[account.Name] = account.ID
		if _, exists := byID[account.ID]; !exists {
			byID[account.ID] = account
		}
	}

	return &Mapper{byName: byName, byID: byID}, nil
}

// Resolve returns the account ID for a name. A numeric string is
// treated as a raw account ID and passed through.
func (m *Mapper) Resolve(name string) (int64, error) {
	if id, err := strconv.ParseInt(name, 10, 64); err == nil {
		return id, nil
	}

	id, ok := m.byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown account name: %s", name)
	}
	return id, nil
}

// Lookup returns the account mapped to an ID.
func (m *Mapper) Lookup(id int64) (Account, bool) {
	account, ok := m.byID[id]
	return account, ok
}

// Names returns all mapped account names in sorted order.
func (m *Mapper) Names() []string {
	names := make([]string, 0, len(m.byName))
	for name := range m.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
