package viewmodel

import (
	"MatchFun/internal/chant"
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// FunMatchMode — режим игрового экрана.
type FunMatchMode string

const (
	ModeBingo   FunMatchMode = "Bingo"
	ModeBigText FunMatchMode = "Big Text"
	ModeChants  FunMatchMode = "Chants"
)

// BingoItem — клетка бинго-карточки. Состояние живёт только в памяти.
type BingoItem struct {
	Text       string `json:"text"`
	IsComplete bool   `json:"is_complete"`
}

func defaultBingoItems() []BingoItem {
	return []BingoItem{
		{Text: "Goal in the first half"},
		{Text: "Red card"},
		{Text: "Penalty kick"},
		{Text: "Corner goal"},
		{Text: "VAR decision"},
		{Text: "Yellow card"},
		{Text: "Substitution before 60'"},
		{Text: "Goal from outside the box"},
		{Text: "Injury time goal"},
	}
}

// FunMatchViewModel — состояние игрового экрана: бинго, "большой текст"
// и кричалки. Генерация кричалки — единственный путь с сетевым вызовом;
// он идёт вне пути записи и возвращается в хранилище только с готовым
// результатом.
type FunMatchViewModel struct {
	mu sync.Mutex

	SelectedMode FunMatchMode

	// Bingo
	SelectedMatchID    *string
	BingoItems         []BingoItem
	IsCustomizing      bool
	CustomizationItems []BingoItem

	// Chants
	ChantTopic     string
	IsLoadingChant bool
	AlertError     string

	// Big Text
	BigText  string
	FontSize float64

	// Номер поколения генерации: результат, пришедший для устаревшего
	// поколения, отбрасывается.
	generation uint64

	generator chant.Generator
	chants    repo.ChantRepository
	chantsRes *livequery.Results[model.Chant]
	matchSub  *livequery.Subscription
	matchRepo repo.MatchRepository
	logger    *zap.SugaredLogger
}

func NewFunMatchViewModel(ctx context.Context, matchRepo repo.MatchRepository, chantRepo repo.ChantRepository, generator chant.Generator, bus *livequery.Bus, logger *zap.SugaredLogger, onChange func()) (*FunMatchViewModel, error) {
	vm := &FunMatchViewModel{
		SelectedMode: ModeBingo,
		BingoItems:   defaultBingoItems(),
		BigText:      "COME ON YOU REDS!",
		FontSize:     72.0,
		generator:    generator,
		chants:       chantRepo,
		matchRepo:    matchRepo,
		logger:       logger,
	}

	matches, err := matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		vm.SelectedMatchID = &matches[0].ID
	}

	vm.matchSub = bus.Subscribe(livequery.CollectionMatches, func(livequery.Event) {
		if onChange != nil {
			onChange()
		}
	})

	vm.chantsRes, err = livequery.Observe(bus, livequery.CollectionChants,
		func() ([]model.Chant, error) { return chantRepo.List(context.Background()) },
		func([]model.Chant) {
			if onChange != nil {
				onChange()
			}
		},
	)
	if err != nil {
		vm.matchSub.Unsubscribe()
		return nil, err
	}
	return vm, nil
}

// SavedChants — живой список сохранённых кричалок.
func (vm *FunMatchViewModel) SavedChants() []model.Chant {
	return vm.chantsRes.Items()
}

// GenerateChant выполняет генерацию по теме из формы. Успешный результат
// сохраняется в хранилище; ошибка попадает в AlertError — это
// единственный пользовательский путь ошибок в системе. Результат,
// пришедший после более новой генерации, отбрасывается.
func (vm *FunMatchViewModel) GenerateChant(ctx context.Context) {
	vm.mu.Lock()
	topic := strings.TrimSpace(vm.ChantTopic)
	if topic == "" {
		vm.IsLoadingChant = false
		vm.mu.Unlock()
		return
	}
	vm.IsLoadingChant = true
	vm.generation++
	gen := vm.generation
	vm.mu.Unlock()

	result, err := vm.generator.GenerateChant(ctx, topic)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if gen != vm.generation {
		// запрос перекрыт более новым
		return
	}
	vm.IsLoadingChant = false
	if err != nil {
		vm.AlertError = chant.UserMessage(err)
		return
	}
	if saveErr := vm.chants.Save(ctx, result.Title, result.Text); saveErr != nil {
		vm.logger.Errorw("save chant failed", "topic", topic, "error", saveErr)
	}
	vm.ChantTopic = ""
}

// DeleteChant — best effort, ошибка логируется.
func (vm *FunMatchViewModel) DeleteChant(ctx context.Context, id string) {
	if err := vm.chants.Delete(ctx, id); err != nil {
		vm.logger.Errorw("delete chant failed", "id", id, "error", err)
	}
}

// ToggleBingoCell переключает клетку карточки.
func (vm *FunMatchViewModel) ToggleBingoCell(i int) {
	if i < 0 || i >= len(vm.BingoItems) {
		return
	}
	vm.BingoItems[i].IsComplete = !vm.BingoItems[i].IsComplete
}

// StartCustomizing открывает редактирование копии карточки.
func (vm *FunMatchViewModel) StartCustomizing() {
	vm.CustomizationItems = append([]BingoItem(nil), vm.BingoItems...)
	vm.IsCustomizing = true
}

// SaveCustomization применяет правки, отбрасывая пустые клетки.
func (vm *FunMatchViewModel) SaveCustomization() {
	kept := make([]BingoItem, 0, len(vm.CustomizationItems))
	for _, item := range vm.CustomizationItems {
		if item.Text != "" {
			kept = append(kept, item)
		}
	}
	vm.BingoItems = kept
	vm.IsCustomizing = false
}

func (vm *FunMatchViewModel) AddNewCustomItem() {
	vm.CustomizationItems = append(vm.CustomizationItems, BingoItem{})
}

func (vm *FunMatchViewModel) DeleteCustomItem(i int) {
	if i < 0 || i >= len(vm.CustomizationItems) {
		return
	}
	vm.CustomizationItems = append(vm.CustomizationItems[:i], vm.CustomizationItems[i+1:]...)
}

// ResetBingo возвращает карточку к базовому набору.
func (vm *FunMatchViewModel) ResetBingo() {
	vm.BingoItems = defaultBingoItems()
}

// Close снимает обе подписки.
func (vm *FunMatchViewModel) Close() {
	vm.matchSub.Unsubscribe()
	vm.chantsRes.Close()
}
