package commands

import (
	"MatchFun/internal/config"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func TestDispatch_NoArgsShowsUsage(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, nil)
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "MatchFun CLI")
	assert.Contains(t, buf.String(), "Commands:")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"frobnicate"})
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Unknown command: frobnicate")
}

func TestDispatch_HelpForCommand(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"help", "chant"})
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Usage: chant <topic...>")
}

func TestDispatch_UsageErrorShowsCommandUsage(t *testing.T) {
	buf := captureOut(t)
	// match-del без аргументов — ErrUsage
	code := Dispatch(context.Background(), &config.Config{}, []string{"match-del"})
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Usage: match-del <id>")
}

func TestFormatGlobalUsage_ListsAllCommands(t *testing.T) {
	usage := FormatGlobalUsage()
	for _, name := range []string{
		"matches", "match-add", "match-del",
		"checklist", "check", "item-add", "item-del",
		"memories", "memory-add", "memory-del",
		"chants", "chant", "chant-del",
		"status", "wipe", "onboarding-done",
	} {
		assert.True(t, strings.Contains(usage, name), "usage must mention %s", name)
	}
}
