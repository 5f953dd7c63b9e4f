package commands

import (
	"MatchFun/internal/cli/api"
	"MatchFun/internal/config"
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type memoryView struct {
	ID          string     `json:"id"`
	Match       *matchView `json:"match,omitempty"`
	Description string     `json:"description"`
	Location    *string    `json:"location,omitempty"`
	Tags        []string   `json:"tags"`
	Photos      [][]byte   `json:"photos"`
	CreatedAt   time.Time  `json:"created_at"`
}

type memoriesCmd struct{}

func (memoriesCmd) Name() string { return "memories" }
func (memoriesCmd) Description() string {
	return "Показать ленту воспоминаний"
}
func (memoriesCmd) Usage() string { return "memories" }

func (memoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var memories []memoryView
	if err := api.GetJSON(ctx, cfg.ServerURL+"/api/memories", &memories); err != nil {
		return err
	}
	if len(memories) == 0 {
		fmt.Fprintln(Out, "Нет воспоминаний")
		return nil
	}
	for _, m := range memories {
		matchInfo := "(no match)"
		if m.Match != nil {
			matchInfo = fmt.Sprintf("%s vs %s", m.Match.HomeTeam, m.Match.AwayTeam)
		}
		tags := ""
		if len(m.Tags) > 0 {
			tags = "  #" + strings.Join(m.Tags, " #")
		}
		fmt.Fprintf(Out, "- %s  %s  %s  photos=%d%s\n  %s\n",
			m.ID, m.CreatedAt.Format("2006-01-02"), matchInfo, len(m.Photos), tags, m.Description)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(memories))
	return nil
}

type memoryAddCmd struct{}

func (memoryAddCmd) Name() string { return "memory-add" }
func (memoryAddCmd) Description() string {
	return "Добавить воспоминание с фото"
}
func (memoryAddCmd) Usage() string {
	return "memory-add -d <description> -p <photo.jpg> [-p ...] [-m <match-id>] [-t tag1,tag2] [-l location]"
}

func (memoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("memory-add", flag.ContinueOnError)
	fs.SetOutput(Out)
	description := fs.String("d", "", "описание")
	matchID := fs.String("m", "", "id матча")
	tagsCSV := fs.String("t", "", "теги через запятую")
	location := fs.String("l", "", "локация")
	var photos photoList
	fs.Var(&photos, "p", "путь к фото (повторяемый)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *description == "" || len(photos) == 0 {
		return ErrUsage
	}

	fields := map[string][]string{"description": {*description}}
	if *matchID != "" {
		fields["match_id"] = []string{*matchID}
	}
	if *location != "" {
		fields["location"] = []string{*location}
	}
	for _, tag := range strings.Split(*tagsCSV, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			fields["tags"] = append(fields["tags"], tag)
		}
	}

	resp, body, err := api.PostMultipart(ctx, cfg.ServerURL+"/api/memories", fields, photos)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server returned %s: %s", resp.Status, body)
	}
	fmt.Fprintln(Out, "Воспоминание сохранено")
	return nil
}

// photoList — повторяемый флаг -p.
type photoList []string

func (p *photoList) String() string { return strings.Join(*p, ",") }
func (p *photoList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

type memoryDelCmd struct{}

func (memoryDelCmd) Name() string { return "memory-del" }
func (memoryDelCmd) Description() string {
	return "Удалить воспоминание по id"
}
func (memoryDelCmd) Usage() string { return "memory-del <id>" }

func (memoryDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := api.Delete(ctx, cfg.ServerURL+"/api/memories/"+args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Воспоминание удалено")
	return nil
}

func init() {
	RegisterCmd(memoriesCmd{})
	RegisterCmd(memoryAddCmd{})
	RegisterCmd(memoryDelCmd{})
}
