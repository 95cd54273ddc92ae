package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlitemigrate "github.com/louisbranch/aicopilot/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/louisbranch/aicopilot/internal/services/web/storage"
	"github.com/louisbranch/aicopilot/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const defaultListLimit = 50

// Store provides SQLite-backed persistence for contact submissions.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides submission id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// Open opens and migrates a contact SQLite store, creating the parent
// directory when needed.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(store)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveContactMessage stores a submission, assigning its id and timestamp.
func (s *Store) SaveContactMessage(ctx context.Context, msg webstorage.ContactMessage) (webstorage.ContactMessage, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.ContactMessage{}, fmt.Errorf("storage is not configured")
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Company = strings.TrimSpace(msg.Company)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return webstorage.ContactMessage{}, fmt.Errorf("name, email and message are required")
	}
	if strings.TrimSpace(msg.ID) == "" {
		msg.ID = s.newID()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	msg.CreatedAt = msg.CreatedAt.UTC().Truncate(time.Millisecond)

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contact_messages (id, name, email, company, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Company,
		msg.Message,
		msg.CreatedAt.UnixMilli(),
	); err != nil {
		return webstorage.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}
	return msg, nil
}

// ListContactMessages returns the newest submissions first.
func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]webstorage.ContactMessage, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, company, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []webstorage.ContactMessage
	for rows.Next() {
		var msg webstorage.ContactMessage
		var createdAt int64
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Company, &msg.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		msg.CreatedAt = time.UnixMilli(createdAt).UTC()
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

var _ webstorage.ContactStore = (*Store)(nil)
