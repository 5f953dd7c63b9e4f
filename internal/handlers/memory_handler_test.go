package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postMemoryForm собирает multipart-запрос создания воспоминания.
func postMemoryForm(t *testing.T, e *testEnv, fields map[string][]string, photos [][]byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	for i, p := range photos {
		fw, err := mw.CreateFormFile("photo", "photo.png")
		require.NoError(t, err)
		_, err = fw.Write(p)
		require.NoError(t, err, "photo %d", i)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/api/memories", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestMemoryAPI_Create(t *testing.T) {
	e := newTestEnv(t)
	match := addTestMatch(t, e)

	resp := postMemoryForm(t, e, map[string][]string{
		"match_id":    {match.ID},
		"description": {"incredible comeback"},
		"location":    {"Emirates Stadium"},
		"tags":        {"derby", "comeback"},
	}, [][]byte{pngBytes(t), pngBytes(t)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[MemoryDTO](t, resp)

	assert.Equal(t, "incredible comeback", created.Description)
	assert.Equal(t, []string{"derby", "comeback"}, created.Tags)
	require.Len(t, created.Photos, 2)
	// фото пережаты в JPEG
	assert.Equal(t, []byte{0xFF, 0xD8}, created.Photos[0][:2])
	require.NotNil(t, created.MatchID)
	assert.Equal(t, match.ID, *created.MatchID)
}

func TestMemoryAPI_CreateRequiresPhotoAndDescription(t *testing.T) {
	e := newTestEnv(t)

	resp := postMemoryForm(t, e, map[string][]string{"description": {"no photo"}}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postMemoryForm(t, e, map[string][]string{}, [][]byte{pngBytes(t)})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestMemoryAPI_ListNewestFirstWithMatch(t *testing.T) {
	e := newTestEnv(t)
	match := addTestMatch(t, e)

	resp := postMemoryForm(t, e, map[string][]string{
		"match_id":    {match.ID},
		"description": {"first"},
	}, [][]byte{pngBytes(t)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodGet, "/api/memories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	memories := decodeBody[[]MemoryDTO](t, resp)
	require.Len(t, memories, 1)
	require.NotNil(t, memories[0].Match, "match preloaded in listing")
	assert.Equal(t, "Arsenal", memories[0].Match.HomeTeam)
}

func TestMemoryAPI_MatchDeletionNullsReference(t *testing.T) {
	e := newTestEnv(t)
	match := addTestMatch(t, e)

	resp := postMemoryForm(t, e, map[string][]string{
		"match_id":    {match.ID},
		"description": {"outlives the match"},
	}, [][]byte{pngBytes(t)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodDelete, "/api/matches/"+match.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodGet, "/api/memories", nil)
	memories := decodeBody[[]MemoryDTO](t, resp)
	require.Len(t, memories, 1)
	assert.Nil(t, memories[0].MatchID)
	assert.Nil(t, memories[0].Match)
}

func TestMemoryAPI_Delete(t *testing.T) {
	e := newTestEnv(t)

	resp := postMemoryForm(t, e, map[string][]string{"description": {"short lived"}}, [][]byte{pngBytes(t)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[MemoryDTO](t, resp)

	resp = e.do(t, http.MethodDelete, "/api/memories/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodGet, "/api/memories", nil)
	memories := decodeBody[[]MemoryDTO](t, resp)
	assert.Empty(t, memories)
}
