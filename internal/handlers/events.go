package handlers

import (
	"MatchFun/internal/livequery"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// EventsHandler транслирует события шины изменений клиентам как SSE.
// Каждое событие — JSON {"collection": ..., "kind": ...}; клиент сам
// решает, какие списки перечитать.
type EventsHandler struct {
	Bus    *livequery.Bus
	Logger *zap.SugaredLogger
}

func NewEventsHandler(bus *livequery.Bus, logger *zap.SugaredLogger) *EventsHandler {
	return &EventsHandler{Bus: bus, Logger: logger}
}

type eventDTO struct {
	Collection string `json:"collection"`
	Kind       string `json:"kind"`
}

// Stream держит соединение открытым до отключения клиента.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Publish на шине синхронный; буфер развязывает запись в хранилище
	// от медленного клиента. Переполнение буфера роняет соединение —
	// клиент переподключится и перечитает списки целиком.
	events := make(chan livequery.Event, 64)
	overflow := make(chan struct{}, 1)
	sub := h.Bus.SubscribeAll(func(e livequery.Event) {
		select {
		case events <- e:
		default:
			select {
			case overflow <- struct{}{}:
			default:
			}
		}
	})
	defer sub.Unsubscribe()

	// Подписка оформляется до отправки заголовков: клиент, получивший
	// ответ, уже не пропустит событий.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-overflow:
			h.Logger.Warnw("SSE client too slow, dropping connection")
			return
		case e := <-events:
			data, err := json.Marshal(eventDTO{Collection: string(e.Collection), Kind: string(e.Kind)})
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
