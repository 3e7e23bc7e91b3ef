package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

const (
	APIKeyEnv    = "GEMINI_API_KEY"
	APIKeySecret = "rememble/genai/api_key"
	DefaultModel = "gemini-2.5-flash"
)

var (
	ErrEmptyResponse = errors.New("assistant returned an empty response")

	listMarker = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s*`)
)

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Assistant answers note prompt and note draft requests through the Gemini API.
type Assistant struct {
	models generator
	model  string
	logger *zap.Logger
}

var _ ports.NoteAssistant = (*Assistant)(nil)

func New(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Assistant, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("genai API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newAssistant(client.Models, model, logger), nil
}

func newAssistant(models generator, model string, logger *zap.Logger) *Assistant {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Assistant{models: models, model: model, logger: logger}
}

func (a *Assistant) Model() string {
	return a.model
}

type promptsPayload struct {
	Prompts []string `json:"prompts"`
}

func (a *Assistant) GenerateNotePrompts(ctx context.Context, profileData string) ([]string, error) {
	temperature := float32(0.8)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(notePromptsInstruction, genai.RoleUser),
		Temperature:       &temperature,
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"prompts": {
					Type:        genai.TypeArray,
					Description: "Three distinct, concise note prompts.",
					Items:       &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"prompts"},
		},
	}

	text, err := a.generate(ctx, notePromptsRequest(profileData), config)
	if err != nil {
		return nil, err
	}

	return parsePrompts(text)
}

func (a *Assistant) SummarizeConnection(ctx context.Context, profileData, history string) (string, error) {
	temperature := float32(0.4)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(summaryInstruction, genai.RoleUser),
		Temperature:       &temperature,
	}

	text, err := a.generate(ctx, summaryRequest(profileData, history), config)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (a *Assistant) generate(ctx context.Context, request string, config *genai.GenerateContentConfig) (string, error) {
	a.logger.Debug("genai request", zap.String("model", a.model), zap.Int("request_chars", len(request)))

	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(request), config)
	if err != nil {
		return "", fmt.Errorf("genai generate content: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// parsePrompts reads the JSON payload and tolerates a plain list answer.
func parsePrompts(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var payload promptsPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return cleanPrompts(payload.Prompts, false)
	}

	return cleanPrompts(strings.Split(text, "\n"), true)
}

func cleanPrompts(lines []string, stripMarkers bool) ([]string, error) {
	prompts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if stripMarkers {
			line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		}
		if line != "" {
			prompts = append(prompts, line)
		}
	}
	if len(prompts) == 0 {
		return nil, ErrEmptyResponse
	}

	return prompts, nil
}

// ResolveAPIKey prefers the environment over the secret store. A key found
// nowhere yields an empty key and no error.
func ResolveAPIKey(ctx context.Context, getenv func(string) string, secrets ports.SecretStore) (key string, source string, err error) {
	if getenv != nil {
		if key := strings.TrimSpace(getenv(APIKeyEnv)); key != "" {
			return key, "env", nil
		}
	}
	if secrets == nil {
		return "", "", nil
	}

	key, err = secrets.Get(ctx, APIKeySecret)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("read genai API key: %w", err)
	}
	if key = strings.TrimSpace(key); key == "" {
		return "", "", nil
	}

	return key, "secret store", nil
}
