package viewmodel

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"context"

	"go.uber.org/zap"
)

// ChecklistViewModel — состояние экрана чеклиста. Наблюдение вторым
// стилем: подписка лишь сигналит "что-то изменилось", выборку делает
// читатель. Перед подпиской сидируется базовый набор.
type ChecklistViewModel struct {
	// Поля формы добавления личного пункта.
	NewItemName        string
	NewItemDescription string
	IsAddingItem       bool

	repo   repo.ChecklistRepository
	sub    *livequery.Subscription
	logger *zap.SugaredLogger
}

// NewChecklistViewModel сидирует essential-набор (если чеклист пуст)
// и подписывается на изменения. onChange (опционально) — сигнал
// "пересчитай зависимое состояние".
func NewChecklistViewModel(checklistRepo repo.ChecklistRepository, bus *livequery.Bus, logger *zap.SugaredLogger, onChange func()) *ChecklistViewModel {
	vm := &ChecklistViewModel{repo: checklistRepo, logger: logger}

	if err := checklistRepo.SeedEssentialItems(context.Background()); err != nil {
		logger.Errorw("seed essential checklist failed", "error", err)
	}

	vm.sub = bus.Subscribe(livequery.CollectionChecklist, func(livequery.Event) {
		if onChange != nil {
			onChange()
		}
	})
	return vm
}

// EssentialItems — живая выборка базового набора.
func (vm *ChecklistViewModel) EssentialItems(ctx context.Context) ([]model.ChecklistItem, error) {
	return vm.repo.List(ctx, true)
}

// PersonalItems — живая выборка личных пунктов.
func (vm *ChecklistViewModel) PersonalItems(ctx context.Context) ([]model.ChecklistItem, error) {
	return vm.repo.List(ctx, false)
}

// AddItem сохраняет личный пункт из полей формы и сбрасывает форму.
// Пустое имя — тихий отказ.
func (vm *ChecklistViewModel) AddItem(ctx context.Context) {
	if vm.NewItemName == "" {
		return
	}
	if err := vm.repo.Add(ctx, vm.NewItemName, nilIfEmpty(vm.NewItemDescription)); err != nil {
		vm.logger.Errorw("add checklist item failed", "name", vm.NewItemName, "error", err)
	}
	vm.NewItemName = ""
	vm.NewItemDescription = ""
	vm.IsAddingItem = false
}

// ToggleItem — best effort, ошибка логируется.
func (vm *ChecklistViewModel) ToggleItem(ctx context.Context, id string) {
	if err := vm.repo.ToggleCompletion(ctx, id); err != nil {
		vm.logger.Errorw("toggle checklist item failed", "id", id, "error", err)
	}
}

// DeletePersonalItem — best effort, ошибка логируется. UI не даёт
// удалять essential-пункты, хранилище этого не проверяет.
func (vm *ChecklistViewModel) DeletePersonalItem(ctx context.Context, id string) {
	if err := vm.repo.Delete(ctx, id); err != nil {
		vm.logger.Errorw("delete checklist item failed", "id", id, "error", err)
	}
}

// Close снимает подписку.
func (vm *ChecklistViewModel) Close() {
	vm.sub.Unsubscribe()
}
