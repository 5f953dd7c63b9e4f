package viewmodel

import (
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"context"
	"strings"
)

// AddMemoryViewModel — состояние формы добавления воспоминания.
// Фото загружаются вне пути записи; в хранилище уходят уже готовые
// JPEG-байты одним вызовом PostMemory.
type AddMemoryViewModel struct {
	AvailableMatches []model.Match
	SelectedMatchID  *string

	LoadedPhotos [][]byte

	Description string
	TagsString  string
	Location    string

	memories repo.MemoryRepository
}

// NewAddMemoryViewModel выбирает первый доступный матч по умолчанию.
func NewAddMemoryViewModel(ctx context.Context, matchRepo repo.MatchRepository, memoryRepo repo.MemoryRepository) (*AddMemoryViewModel, error) {
	matches, err := matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vm := &AddMemoryViewModel{AvailableMatches: matches, memories: memoryRepo}
	if len(matches) > 0 {
		vm.SelectedMatchID = &matches[0].ID
	}
	return vm, nil
}

// IsPostEnabled: выбран матч, есть хотя бы одно фото, описание не пусто.
func (vm *AddMemoryViewModel) IsPostEnabled() bool {
	return vm.SelectedMatchID != nil && len(vm.LoadedPhotos) > 0 && vm.Description != ""
}

// PostMemory собирает воспоминание из полей формы и вставляет его.
// Без выбранного матча — тихий отказ.
func (vm *AddMemoryViewModel) PostMemory(ctx context.Context) error {
	if vm.SelectedMatchID == nil {
		return nil
	}
	_, err := vm.memories.Add(ctx,
		vm.SelectedMatchID,
		vm.Description,
		ParseTags(vm.TagsString),
		nilIfEmpty(vm.Location),
		vm.LoadedPhotos,
	)
	return err
}

// ParseTags разбирает строку тегов: запятая — разделитель,
// пробелы обрезаются, пустые отбрасываются, порядок сохраняется.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
