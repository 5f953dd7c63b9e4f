package chant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Chant — результат генерации. Title повторяет тему пользователя.
type Chant struct {
	Title string
	Text  string
}

// Классы ошибок генерации. Это единственный путь в системе,
// чьи ошибки показываются пользователю.
var (
	ErrEncodeRequest = errors.New("failed to encode the request")
	ErrNetwork       = errors.New("network error")
	ErrAPIStatus     = errors.New("the AI service returned an error")
	ErrDecode        = errors.New("failed to decode the AI response")
	ErrNoContent     = errors.New("no content generated")
)

// UserMessage переводит ошибку генерации в читаемое сообщение для алерта.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEncodeRequest):
		return "Failed to encode the request."
	case errors.Is(err, ErrAPIStatus):
		return "The AI service returned an error: " + err.Error()
	case errors.Is(err, ErrDecode):
		return "Failed to understand the AI's response. Please try again."
	case errors.Is(err, ErrNoContent):
		return "The AI could not generate a chant for this topic. Please try again."
	default:
		return "A network error occurred. Please check your connection."
	}
}

// Generator — контракт генерации кричалок (мокается в тестах вьюмоделей).
type Generator interface {
	GenerateChant(ctx context.Context, topic string) (*Chant, error)
}

// Service — клиент generateContent API. Один исходящий HTTPS POST,
// промпт — фиксированный шаблон, параметризованный только темой.
type Service struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

var _ Generator = (*Service)(nil)

func NewService(baseURL, apiKey, model string) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

// Формат запроса/ответа generateContent.
type apiRequest struct {
	Contents []apiContent `json:"contents"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

type apiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type chantPayload struct {
	Chant string `json:"chant"`
}

// GenerateChant выполняет запрос и разбирает вложенный JSON-ответ.
func (s *Service) GenerateChant(ctx context.Context, topic string) (*Chant, error) {
	payload := apiRequest{Contents: []apiContent{{Parts: []apiPart{{Text: buildPrompt(topic)}}}}}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeRequest, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP status %d", ErrAPIStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	text := extractText(apiResp)
	if text == "" {
		return nil, ErrNoContent
	}
	return parseChant(text, topic)
}

func extractText(resp apiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == nil {
		return ""
	}
	return *parts[0].Text
}

// parseChant снимает markdown-обрамление и разбирает внутренний JSON
// вида {"chant": "..."}.
func parseChant(jsonString, topic string) (*Chant, error) {
	cleaned := strings.TrimSpace(jsonString)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	var payload chantPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &Chant{Title: topic, Text: payload.Chant}, nil
}

func buildPrompt(topic string) string {
	return fmt.Sprintf(`You are a creative expert in writing short, powerful, and catchy football (soccer) chants. Your ONLY task is to generate one chant based on the provided topic.

**Topic:** %q

**Instructions:**
1.  Create one chant, typically 4-6 lines long.
2.  The chant must be energetic, rhythmic, and easy to shout.
3.  Strictly focus on the provided topic. Do not write about anything else.

**Output Format:**
Your response MUST be a single, valid JSON object. Do not include any text, explanations, or markdown formatting. Your entire response must be the raw JSON object itself.

The JSON structure MUST be as follows:
{
  "chant": "string (the full chant, use \n for new lines)"
}`, topic)
}
