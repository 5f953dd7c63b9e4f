package commands

import (
	"MatchFun/internal/cli/api"
	"MatchFun/internal/config"
	"context"
	"fmt"
	"net/http"
	"time"
)

// matchView — JSON-представление матча на стороне клиента.
type matchView struct {
	ID            string    `json:"id"`
	League        *string   `json:"league,omitempty"`
	HomeTeam      string    `json:"home_team"`
	AwayTeam      string    `json:"away_team"`
	HomeTeamShort string    `json:"home_team_short"`
	AwayTeamShort string    `json:"away_team_short"`
	Date          time.Time `json:"date"`
	Stadium       *string   `json:"stadium,omitempty"`
	IsAttending   bool      `json:"is_attending"`
}

type matchesCmd struct{}

func (matchesCmd) Name() string { return "matches" }
func (matchesCmd) Description() string {
	return "Показать все матчи"
}
func (matchesCmd) Usage() string { return "matches" }

func (matchesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var matches []matchView
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/matches", &matches); err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(Out, "Нет матчей")
		return nil
	}
	for _, m := range matches {
		attending := ""
		if m.IsAttending {
			attending = " [going]"
		}
		stadium := ""
		if m.Stadium != nil {
			stadium = "  @" + *m.Stadium
		}
		fmt.Fprintf(Out, "- %s  %s vs %s (%s-%s)  %s%s%s\n",
			m.ID, m.HomeTeam, m.AwayTeam, m.HomeTeamShort, m.AwayTeamShort,
			m.Date.Format("2006-01-02 15:04"), stadium, attending)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(matches))
	return nil
}

type matchAddCmd struct{}

func (matchAddCmd) Name() string { return "match-add" }
func (matchAddCmd) Description() string {
	return "Добавить матч (дата в формате 2006-01-02T15:04)"
}
func (matchAddCmd) Usage() string { return "match-add <home> <away> <date> [stadium]" }

func (matchAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	date, err := time.ParseInLocation("2006-01-02T15:04", args[2], time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", args[2], err)
	}
	payload := map[string]any{
		"home_team": args[0],
		"away_team": args[1],
		"date":      date,
	}
	if len(args) == 4 {
		payload["stadium"] = args[3]
	}
	resp, body, err := api.PostJSON(ctx, cfg.ServerURL+"/api/matches", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server returned %s: %s", resp.Status, body)
	}
	fmt.Fprintln(Out, "Матч добавлен")
	return nil
}

type matchDelCmd struct{}

func (matchDelCmd) Name() string { return "match-del" }
func (matchDelCmd) Description() string {
	return "Удалить матч по id"
}
func (matchDelCmd) Usage() string { return "match-del <id>" }

func (matchDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := api.Delete(ctx, cfg.ServerURL+"/api/matches/"+args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Матч удалён")
	return nil
}

func init() {
	RegisterCmd(matchesCmd{})
	RegisterCmd(matchAddCmd{})
	RegisterCmd(matchDelCmd{})
}
