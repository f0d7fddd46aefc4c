package integration

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shunichi-ikebuchi/kakeibo-client/emulator"
	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/store"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

const testAPIKey = "ik_testkey"

// testEnv is one emulator instance with a client pointed at it.
type testEnv struct {
	server *httptest.Server
	client *kakeibo.Client
}

// setupEnv starts an emulator backed by a temporary database.
// lockedBefore, when non-empty, closes the accounting period before that date.
func setupEnv(t *testing.T, lockedBefore string) *testEnv {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "emulator.db"))
	if err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	router := emulator.NewRouter(st, emulator.Options{
		APIKey:       testAPIKey,
		LockedBefore: lockedBefore,
		Quiet:        true,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client := kakeibo.NewClient(kakeibo.ClientConfig{
		BaseURL: server.URL,
		APIKey:  testAPIKey,
	})
	t.Cleanup(client.Close)

	return &testEnv{server: server, client: client}
}

// balancedJournal builds a create request with matching debit/credit totals.
func balancedJournal(date, description string, amount int64) kakeibo.JournalCreateRequest {
	return kakeibo.JournalCreateRequest{
		Date:        kakeibo.DateString(date),
		Description: description,
		Lines: []kakeibo.JournalLine{
			{AccountID: 12, Debit: amount},
			{AccountID: 1, Credit: amount},
		},
	}
}
