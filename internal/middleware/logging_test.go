package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// Дымовой тест: мидлварь логирования не паникует и прозрачно проксирует ответ
func TestWithLogging_Passthrough(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	h := WithLogging(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/matches/42", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status passthrough failed: got %d", rr.Code)
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := httptest.NewRecorder()
	WithLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/chants", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("implicit status want 200, got %d", rr.Code)
	}
	if rr.Body.String() != `{"ok":true}` {
		t.Fatalf("body passthrough failed: %q", rr.Body.String())
	}
}
