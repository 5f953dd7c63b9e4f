package viewmodel

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"context"

	"go.uber.org/zap"
)

// MatchesViewModel — состояние экрана списка матчей. Держит живой
// результат запроса: набор переприсваивается на каждом изменении
// коллекции (первый стиль наблюдения).
type MatchesViewModel struct {
	matches *livequery.Results[model.Match]
	repo    repo.MatchRepository
	logger  *zap.SugaredLogger
}

// NewMatchesViewModel подписывает модель на живой список матчей.
// onChange (опционально) дёргается со свежим набором после каждого изменения.
func NewMatchesViewModel(matchRepo repo.MatchRepository, bus *livequery.Bus, logger *zap.SugaredLogger, onChange func([]model.Match)) (*MatchesViewModel, error) {
	results, err := livequery.Observe(bus, livequery.CollectionMatches,
		func() ([]model.Match, error) { return matchRepo.List(context.Background()) },
		onChange,
	)
	if err != nil {
		return nil, err
	}
	return &MatchesViewModel{matches: results, repo: matchRepo, logger: logger}, nil
}

// Matches — текущий набор матчей (по возрастанию даты).
func (vm *MatchesViewModel) Matches() []model.Match {
	return vm.matches.Items()
}

// DeleteMatch — best effort: ошибка не блокирует поток, но логируется.
func (vm *MatchesViewModel) DeleteMatch(ctx context.Context, id string) {
	if err := vm.repo.Delete(ctx, id); err != nil {
		vm.logger.Errorw("delete match failed", "id", id, "error", err)
	}
}

// Close снимает подписку. Обязателен при утилизации модели.
func (vm *MatchesViewModel) Close() {
	vm.matches.Close()
}
