package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	webstorage "github.com/louisbranch/aicopilot/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "aicopilot.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	if err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'contact_messages'`).Scan(&name); err != nil {
		t.Fatalf("contact_messages table missing: %v", err)
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aicopilot.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := store.SaveContactMessage(context.Background(), webstorage.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	messages, err := reopened.ListContactMessages(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(messages))
	}
}

func TestContactMessageRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 0, 123456789, time.FixedZone("EST", -5*3600))
	ids := []string{"msg-1", "msg-2"}
	store, err := Open(
		filepath.Join(t.TempDir(), "aicopilot.db"),
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}),
	)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	first, err := store.SaveContactMessage(ctx, webstorage.ContactMessage{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
		Message: "Let's talk about agents.",
	})
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	if first.ID != "msg-1" {
		t.Fatalf("first id = %q, want %q", first.ID, "msg-1")
	}
	if first.Name != "Ada Lovelace" {
		t.Fatalf("first name = %q, want trimmed", first.Name)
	}

	later := webstorage.ContactMessage{
		Name:      "Grace",
		Email:     "grace@example.com",
		Message:   "Follow up",
		CreatedAt: now.Add(time.Hour),
	}
	second, err := store.SaveContactMessage(ctx, later)
	if err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := store.ListContactMessages(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []webstorage.ContactMessage{second, first}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if got[1].CreatedAt.Location() != time.UTC {
		t.Fatalf("created_at location = %v, want UTC", got[1].CreatedAt.Location())
	}
}

func TestSaveContactMessageRequiresFields(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "aicopilot.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.SaveContactMessage(context.Background(), webstorage.ContactMessage{Name: "Ada", Email: " "})
	if err == nil {
		t.Fatalf("expected error for missing email and message")
	}
}

func TestNilStoreReportsNotConfigured(t *testing.T) {
	var store *Store
	if _, err := store.ListContactMessages(context.Background(), 1); err == nil {
		t.Fatalf("expected error from nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}
