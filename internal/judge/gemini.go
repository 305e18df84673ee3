package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/KirkDiggler/quickmadu/internal/models"
)

// DefaultModel is the Gemini model used when none is configured
const DefaultModel = "gemini-1.5-flash"

// Config holds configuration for the Gemini judge client
type Config struct {
	// APIKey is the Google AI Studio API key
	APIKey string

	// Model overrides the Gemini model name
	Model string
}

// Gemini implements the Client interface against the Gemini API using
// structured JSON output
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a new Gemini judge client
func NewGemini(ctx context.Context, cfg *Config) (*Gemini, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	model := client.GenerativeModel(modelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = verdictSchema()

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// Close releases the underlying API client
func (g *Gemini) Close() error {
	return g.client.Close()
}

// ValidateWords submits the round to Gemini and parses its structured
// verdict
func (g *Gemini) ValidateWords(ctx context.Context, input *ValidateWordsInput) (*ValidateWordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	prompt, err := buildPrompt(input)
	if err != nil {
		return nil, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate verdict: %w", err)
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var verdict struct {
		PlayerResults []*models.PlayerRoundResult `json:"playerResults"`
	}
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verdict: %w", err)
	}

	if len(verdict.PlayerResults) == 0 {
		return nil, errors.New("verdict contains no player results")
	}

	return &ValidateWordsOutput{
		PlayerResults: verdict.PlayerResults,
	}, nil
}

func buildPrompt(input *ValidateWordsInput) (string, error) {
	submissionsJSON, err := json.Marshal(input.Submissions)
	if err != nil {
		return "", fmt.Errorf("failed to marshal submissions: %w", err)
	}

	return fmt.Sprintf(`You are the official judge for QuickMadu, a fast-thinking word game.
The current round letter is: %q.

Check if the submitted words for each player are valid according to these rules:
1. The word must start with the letter %q.
2. The word must realistically fit the category.
3. Proper nouns are allowed if they fit.

For each valid word:
- If only ONE player provided that specific word for that category: 10 points.
- If MULTIPLE players provided the same valid word for that category: 5 points each.
- If the word is invalid (wrong letter or wrong category): 0 points.

The round categories are: %s.

Players and their submissions:
%s

Respond strictly in JSON format.`,
		input.Letter, input.Letter, formatCategories(input.Categories), submissionsJSON), nil
}

func formatCategories(categories []string) string {
	out, _ := json.Marshal(categories)
	return string(out)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}

	return "", errors.New("no text part in model response")
}

func verdictSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"playerResults": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"playerId": {Type: genai.TypeString},
						"results": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"category": {Type: genai.TypeString},
									"word":     {Type: genai.TypeString},
									"isValid":  {Type: genai.TypeBoolean},
									"points":   {Type: genai.TypeNumber},
									"reason":   {Type: genai.TypeString},
								},
								Required: []string{"category", "word", "isValid", "points"},
							},
						},
						"totalRoundPoints": {Type: genai.TypeNumber},
					},
					Required: []string{"playerId", "results", "totalRoundPoints"},
				},
			},
		},
		Required: []string{"playerResults"},
	}
}
