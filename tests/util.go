package testutil

import (
	"testing"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/records"
	inmemdb "github.com/trezcool/darasa/storage/inmem"
)

// NewConfig returns a self-contained test configuration, bypassing env lookups.
func NewConfig() *core.Config {
	return &core.Config{
		Debug:                true,
		TestMode:             true,
		Env:                  "TEST",
		AppName:              "Darasa",
		SecretKey:            []byte("secret"),
		TokenExpirationDelta: 10 * time.Minute,
		DataDir:              "data",
		CredentialsFile:      "credentials.json",
		CoursesFile:          "courses.json",
		StudentDataFile:      "student_data.json",
	}
}

// Logger is a core.Logger that records what was logged.
type Logger struct {
	DebugCalls []string
	InfoCalls  []string
	WarnCalls  []string
	ErrorCalls []string
	FatalCalls []string
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (l *Logger) Enable(enabled bool)                   {}
func (l *Logger) Debug(msg string, args ...interface{}) { l.DebugCalls = append(l.DebugCalls, msg) }
func (l *Logger) Info(msg string, args ...interface{})  { l.InfoCalls = append(l.InfoCalls, msg) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.WarnCalls = append(l.WarnCalls, msg) }
func (l *Logger) Error(msg string, args ...interface{}) { l.ErrorCalls = append(l.ErrorCalls, msg) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.FatalCalls = append(l.FatalCalls, msg) }

// NewStore builds a Store over fresh in-memory repositories, seeded with the
// defaults unless overridden.
func NewStore(t *testing.T, seeds ...records.Seeds) (*records.Store, *Logger) {
	t.Helper()

	s := records.DefaultSeeds()
	if len(seeds) > 0 {
		s = seeds[0]
	}
	logger := NewLogger()
	store, err := records.NewStore(
		NewConfig(),
		logger,
		s,
		inmemdb.NewCredentialsRepository(),
		inmemdb.NewCourseRepository(),
		inmemdb.NewLedgerRepository(),
	)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	return store, logger
}
