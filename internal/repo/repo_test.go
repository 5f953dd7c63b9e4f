package repo

import (
	"MatchFun/internal/livequery"
	"fmt"
	"testing"
)

// newTestStore инициализирует хранилище поверх in-memory SQLite (modernc).
// Каждый тест получает собственную именованную БД.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := InitDB(dsn)
	if err != nil {
		t.Fatalf("failed to init sqlite (modernc): %v", err)
	}
	return NewStore(db, livequery.NewBus())
}
