package viewmodel

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
)

// newTestStore — хранилище поверх in-memory SQLite для тестов вьюмоделей.
func newTestStore(t *testing.T) *repo.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:vm_%s?mode=memory&cache=shared", t.Name())
	db, err := repo.InitDB(dsn)
	if err != nil {
		t.Fatalf("failed to init sqlite (modernc): %v", err)
	}
	return repo.NewStore(db, livequery.NewBus())
}

func testLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func testMatch(home, away string) *model.Match {
	return &model.Match{
		HomeTeam:      home,
		AwayTeam:      away,
		HomeTeamShort: ShortTeamName(home),
		AwayTeamShort: ShortTeamName(away),
		Date:          time.Now(),
		IsAttending:   true,
	}
}
