package commands

import (
	"MatchFun/internal/cli/api"
	"MatchFun/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string { return "status" }
func (statusCmd) Description() string {
	return "Показать сводку: сервер, онбординг, количество записей"
}
func (statusCmd) Usage() string { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	var onboarding struct {
		HasCompletedOnboarding bool `json:"has_completed_onboarding"`
	}
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/settings/onboarding", &onboarding); err != nil {
		return fmt.Errorf("server unreachable at %s: %w", cfg.ServerURL, err)
	}

	var matches []matchView
	var memories []memoryView
	var chants []chantView
	var cl checklistView
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/matches", &matches); err != nil {
		return err
	}
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/memories", &memories); err != nil {
		return err
	}
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/chants", &chants); err != nil {
		return err
	}
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/checklist", &cl); err != nil {
		return err
	}

	fmt.Fprintf(Out, "Server: %s (ok)\n", cfg.ServerURL)
	fmt.Fprintf(Out, "Onboarding completed: %v\n", onboarding.HasCompletedOnboarding)
	fmt.Fprintf(Out, "Matches: %d\n", len(matches))
	fmt.Fprintf(Out, "Memories: %d\n", len(memories))
	fmt.Fprintf(Out, "Chants: %d\n", len(chants))
	fmt.Fprintf(Out, "Checklist: %d essential, %d personal\n", len(cl.Essential), len(cl.Personal))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
