package handlers

import (
	"MatchFun/internal/chant"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChantAPI_GenerateAndList(t *testing.T) {
	e := newTestEnv(t)
	e.gen.chant = &chant.Chant{Title: "Arsenal", Text: "Line1\nLine2"}

	resp := e.do(t, http.MethodPost, "/api/chants/generate", GenerateChantRequest{Topic: "  Arsenal  "})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Line1\nLine2", body["text"])

	resp = e.do(t, http.MethodGet, "/api/chants", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chants := decodeBody[[]ChantDTO](t, resp)
	require.Len(t, chants, 1)
	assert.Equal(t, "Arsenal", chants[0].Title)
	assert.Equal(t, "Line1\nLine2", chants[0].Text)
}

func TestChantAPI_GenerateRequiresTopic(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/api/chants/generate", GenerateChantRequest{Topic: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestChantAPI_GeneratorErrorSurfaced(t *testing.T) {
	e := newTestEnv(t)
	e.gen.err = chant.ErrNoContent

	resp := e.do(t, http.MethodPost, "/api/chants/generate", GenerateChantRequest{Topic: "Arsenal"})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Contains(t, body["error"], "could not generate")

	// неудачная генерация ничего не сохраняет
	resp = e.do(t, http.MethodGet, "/api/chants", nil)
	chants := decodeBody[[]ChantDTO](t, resp)
	assert.Empty(t, chants)
}

func TestChantAPI_Delete(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/api/chants/generate", GenerateChantRequest{Topic: "Arsenal"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodGet, "/api/chants", nil)
	chants := decodeBody[[]ChantDTO](t, resp)
	require.Len(t, chants, 1)

	resp = e.do(t, http.MethodDelete, "/api/chants/"+chants[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodGet, "/api/chants", nil)
	chants = decodeBody[[]ChantDTO](t, resp)
	assert.Empty(t, chants)
}
