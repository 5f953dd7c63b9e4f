package commands

import (
	"MatchFun/internal/cli/api"
	"MatchFun/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type checklistItemView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsCompleted bool    `json:"is_completed"`
}

type checklistView struct {
	Essential []checklistItemView `json:"essential"`
	Personal  []checklistItemView `json:"personal"`
}

type checklistCmd struct{}

func (checklistCmd) Name() string { return "checklist" }
func (checklistCmd) Description() string {
	return "Показать чеклист подготовки к матчу"
}
func (checklistCmd) Usage() string { return "checklist" }

func (checklistCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var cl checklistView
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/checklist", &cl); err != nil {
		return err
	}
	printSection := func(title string, items []checklistItemView) {
		fmt.Fprintf(Out, "%s:\n", title)
		for _, it := range items {
			mark := " "
			if it.IsCompleted {
				mark = "x"
			}
			desc := ""
			if it.Description != nil {
				desc = "  (" + *it.Description + ")"
			}
			fmt.Fprintf(Out, "  [%s] %s  %s%s\n", mark, it.ID, it.Name, desc)
		}
	}
	printSection("Essential", cl.Essential)
	printSection("Personal", cl.Personal)
	return nil
}

type checkCmd struct{}

func (checkCmd) Name() string { return "check" }
func (checkCmd) Description() string {
	return "Переключить отметку пункта чеклиста"
}
func (checkCmd) Usage() string { return "check <id>" }

func (checkCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, cfg.ServerURL+"/api/checklist/"+args[0]+"/toggle", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("server returned %s: %s", resp.Status, body)
	}
	fmt.Fprintln(Out, "Отметка переключена")
	return nil
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить личный пункт в чеклист"
}
func (itemAddCmd) Usage() string { return "item-add <name> [description...]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	payload := map[string]any{"name": args[0]}
	if len(args) > 1 {
		payload["description"] = strings.Join(args[1:], " ")
	}
	resp, body, err := api.PostJSON(ctx, cfg.ServerURL+"/api/checklist", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server returned %s: %s", resp.Status, body)
	}
	fmt.Fprintln(Out, "Пункт добавлен")
	return nil
}

type itemDelCmd struct{}

func (itemDelCmd) Name() string { return "item-del" }
func (itemDelCmd) Description() string {
	return "Удалить пункт чеклиста по id"
}
func (itemDelCmd) Usage() string { return "item-del <id>" }

func (itemDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := api.Delete(ctx, cfg.ServerURL+"/api/checklist/"+args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Пункт удалён")
	return nil
}

func init() {
	RegisterCmd(checklistCmd{})
	RegisterCmd(checkCmd{})
	RegisterCmd(itemAddCmd{})
	RegisterCmd(itemDelCmd{})
}
