package handlers

import (
	"MatchFun/internal/chant"
	"MatchFun/internal/config"
	"MatchFun/internal/livequery"
	"MatchFun/internal/repo"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGenerator — заглушка генератора кричалок для HTTP-тестов.
type fakeGenerator struct {
	chant *chant.Chant
	err   error
}

func (f *fakeGenerator) GenerateChant(ctx context.Context, topic string) (*chant.Chant, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.chant != nil {
		return f.chant, nil
	}
	return &chant.Chant{Title: topic, Text: "chant about " + topic}, nil
}

type testEnv struct {
	store  *repo.Store
	server *httptest.Server
	gen    *fakeGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repo.InitDB(fmt.Sprintf("file:h_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	store := repo.NewStore(db, livequery.NewBus())
	gen := &fakeGenerator{}
	cfg := &config.Config{PhotoMaxSizeMB: 10}

	h := NewHandler(store, gen, zap.NewNop().Sugar(), cfg)
	server := httptest.NewServer(h.Router)
	t.Cleanup(server.Close)

	return &testEnv{store: store, server: server, gen: gen}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// pngBytes рисует одноцветную картинку для тестов загрузки фото.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testCreateMatchRequest() CreateMatchRequest {
	stadium := "Emirates Stadium"
	return CreateMatchRequest{
		HomeTeam: "Arsenal",
		AwayTeam: "Chelsea",
		Date:     time.Date(2026, 10, 3, 15, 0, 0, 0, time.UTC),
		Stadium:  &stadium,
	}
}

func addTestMatch(t *testing.T, e *testEnv) MatchDTO {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/matches", testCreateMatchRequest())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[MatchDTO](t, resp)
}
