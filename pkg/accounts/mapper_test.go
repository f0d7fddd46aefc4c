package accounts

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleMapping = `
accounts:
  - id: 1
    name: 現金
    type: asset
  - id: 12
    name: 食費
    type: expense
  - id: 13
    name: 雑費
    type: expense
`

func TestResolve(t *testing.T) {
	mapper, err := NewMapperFromYAML([]byte(sampleMapping))
	if err != nil {
		t.Fatalf("NewMapperFromYAML() failed: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"mapped name", "食費", 12, false},
		{"another mapped name", "現金", 1, false},
		{"numeric passthrough", "42", 42, false},
		{"unknown name", "存在しない", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mapper.Resolve(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewMapperFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	if err := os.WriteFile(path, []byte(sampleMapping), 0o644); err != nil {
		t.Fatal(err)
	}

	mapper, err := NewMapper(path)
	if err != nil {
		t.Fatalf("NewMapper() failed: %v", err)
	}

	id, err := mapper.Resolve("雑費")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if id != 13 {
		t.Errorf("Resolve(雑費) = %d, want 13", id)
	}
}

func TestLookup(t *testing.T) {
	mapper, err := NewMapperFromYAML([]byte(sampleMapping))
	if err != nil {
		t.Fatal(err)
	}

	account, ok := mapper.Lookup(12)
	if !ok {
		t.Fatal("Lookup(12) not found")
	}
	if account.Name != "食費" || account.Type != "expense" {
		t.Errorf("Lookup(12) = %+v", account)
	}

	if _, ok := mapper.Lookup(999); ok {
		t.Error("Lookup(999) found, want miss")
	}
}

func TestNewMapperRejectsDuplicates(t *testing.T) {
	data := `
accounts:
  - id: 1
    name: 現金
  - id: 2
    name: 現金
`
	if _, err := NewMapperFromYAML([]byte(data)); err == nil {
		t.Error("NewMapperFromYAML() should reject duplicate names")
	}
}

func TestNames(t *testing.T) {
	mapper, err := NewMapperFromYAML([]byte(sampleMapping))
	if err != nil {
		t.Fatal(err)
	}

	names := mapper.Names()
	if len(names) != 3 {
		t.Fatalf("Names() returned %d entries, want 3", len(names))
	}
}
