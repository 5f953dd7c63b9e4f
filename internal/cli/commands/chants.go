package commands

import (
	"MatchFun/internal/cli/api"
	"MatchFun/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type chantView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type chantsCmd struct{}

func (chantsCmd) Name() string { return "chants" }
func (chantsCmd) Description() string {
	return "Показать сохранённые кричалки"
}
func (chantsCmd) Usage() string { return "chants" }

func (chantsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var chants []chantView
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/chants", &chants); err != nil {
		return err
	}
	if len(chants) == 0 {
		fmt.Fprintln(Out, "Нет кричалок")
		return nil
	}
	for _, c := range chants {
		fmt.Fprintf(Out, "- %s  [%s]\n%s\n\n", c.ID, c.Title, c.Text)
	}
	return nil
}

type chantCmd struct{}

func (chantCmd) Name() string { return "chant" }
func (chantCmd) Description() string {
	return "Сгенерировать кричалку по теме"
}
func (chantCmd) Usage() string { return "chant <topic...>" }

func (chantCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	topic := strings.Join(args, " ")
	resp, body, err := api.PostJSON(ctx, cfg.ServerURL+"/api/chants/generate", map[string]string{"topic": topic})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s", e.Error)
		}
		return fmt.Errorf("server returned %s: %s", resp.Status, body)
	}
	var out struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	fmt.Fprintf(Out, "[%s]\n%s\n", out.Title, out.Text)
	return nil
}

type chantDelCmd struct{}

func (chantDelCmd) Name() string { return "chant-del" }
func (chantDelCmd) Description() string {
	return "Удалить кричалку по id"
}
func (chantDelCmd) Usage() string { return "chant-del <id>" }

func (chantDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := api.Delete(ctx, cfg.ServerURL+"/api/chants/"+args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Кричалка удалена")
	return nil
}

func init() {
	RegisterCmd(chantsCmd{})
	RegisterCmd(chantCmd{})
	RegisterCmd(chantDelCmd{})
}
