package commands

import (
	"MatchFun/internal/cli/api"
	"MatchFun/internal/config"
	"context"
	"fmt"
)

type wipeCmd struct{}

func (wipeCmd) Name() string { return "wipe" }
func (wipeCmd) Description() string {
	return "Необратимо удалить все данные (требует --yes)"
}
func (wipeCmd) Usage() string { return "wipe --yes" }

func (wipeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] != "--yes" {
		return ErrUsage
	}
	if err := api.Delete(ctx, cfg.ServerURL+"/api/data"); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Все данные удалены")
	return nil
}

type onboardingDoneCmd struct{}

func (onboardingDoneCmd) Name() string { return "onboarding-done" }
func (onboardingDoneCmd) Description() string {
	return "Отметить онбординг пройденным"
}
func (onboardingDoneCmd) Usage() string { return "onboarding-done" }

func (onboardingDoneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	payload := map[string]bool{"has_completed_onboarding": true}
	if err := api.PutJSON(ctx, cfg.ServerURL+"/api/settings/onboarding", payload); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Онбординг отмечен пройденным")
	return nil
}

func init() {
	RegisterCmd(wipeCmd{})
	RegisterCmd(onboardingDoneCmd{})
}
