package viewmodel

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"context"

	"go.uber.org/zap"
)

// MemoriesViewModel — состояние ленты воспоминаний (живой список,
// по убыванию времени создания).
type MemoriesViewModel struct {
	memories *livequery.Results[model.Memory]
	repo     repo.MemoryRepository
	logger   *zap.SugaredLogger
}

func NewMemoriesViewModel(memoryRepo repo.MemoryRepository, bus *livequery.Bus, logger *zap.SugaredLogger, onChange func([]model.Memory)) (*MemoriesViewModel, error) {
	results, err := livequery.Observe(bus, livequery.CollectionMemories,
		func() ([]model.Memory, error) { return memoryRepo.List(context.Background()) },
		onChange,
	)
	if err != nil {
		return nil, err
	}
	return &MemoriesViewModel{memories: results, repo: memoryRepo, logger: logger}, nil
}

func (vm *MemoriesViewModel) Memories() []model.Memory {
	return vm.memories.Items()
}

// DeleteMemory удаляет воспоминание целиком, вместе с вложенными фото.
func (vm *MemoriesViewModel) DeleteMemory(ctx context.Context, id string) {
	if err := vm.repo.Delete(ctx, id); err != nil {
		vm.logger.Errorw("delete memory failed", "id", id, "error", err)
	}
}

func (vm *MemoriesViewModel) Close() {
	vm.memories.Close()
}
