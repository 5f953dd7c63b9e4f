package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistVM_SeedsOnFirstOpen(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	vm := NewChecklistViewModel(s.Checklist, s.Bus(), testLogger(), nil)
	defer vm.Close()

	essential, err := vm.EssentialItems(ctx)
	require.NoError(t, err)
	assert.Len(t, essential, 5)
}

func TestChecklistVM_AddItemResetsForm(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	vm := NewChecklistViewModel(s.Checklist, s.Bus(), testLogger(), nil)
	defer vm.Close()

	vm.NewItemName = "Camera"
	vm.NewItemDescription = "for the celebrations"
	vm.IsAddingItem = true
	vm.AddItem(ctx)

	assert.Empty(t, vm.NewItemName)
	assert.Empty(t, vm.NewItemDescription)
	assert.False(t, vm.IsAddingItem)

	personal, err := vm.PersonalItems(ctx)
	require.NoError(t, err)
	require.Len(t, personal, 1)
	assert.Equal(t, "Camera", personal[0].Name)
	assert.False(t, personal[0].IsEssential)
}

func TestChecklistVM_AddItemEmptyNameIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	vm := NewChecklistViewModel(s.Checklist, s.Bus(), testLogger(), nil)
	defer vm.Close()

	vm.NewItemName = ""
	vm.AddItem(ctx)

	personal, err := vm.PersonalItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, personal)
}

func TestChecklistVM_ChangeSignal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var signals int
	vm := NewChecklistViewModel(s.Checklist, s.Bus(), testLogger(), func() { signals++ })
	defer vm.Close()

	vm.NewItemName = "Camera"
	vm.AddItem(ctx)
	assert.Equal(t, 1, signals)

	personal, err := vm.PersonalItems(ctx)
	require.NoError(t, err)
	require.Len(t, personal, 1)

	vm.ToggleItem(ctx, personal[0].ID)
	assert.Equal(t, 2, signals)

	vm.DeletePersonalItem(ctx, personal[0].ID)
	assert.Equal(t, 3, signals)
}
