package plangen

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

	"studentfit/fitness-planner/internal/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 90 * time.Second
)

var ErrEmptyResponse = errors.New("no candidates in response")

// Config holds the settings for the Gemini-backed generator.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// geminiGenerator implements Generator against the Gemini
// generateContent endpoint, binding the model to planResponseSchema so
// the response is structurally guaranteed to parse into domain.Plan.
type geminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiGenerator creates a Generator backed by the Gemini API.
func NewGeminiGenerator(cfg Config) Generator {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &geminiGenerator{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// --- Wire types ---

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

func (g *geminiGenerator) Generate(ctx context.Context, profile domain.Profile) (*domain.Plan, error) {
	prompt, err := buildPlanPrompt(profile)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}

	text, err := g.generateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("calling Gemini API: %w", err)
	}

	var plan domain.Plan
	if err := json.Unmarshal([]byte(cleanResponse(text)), &plan); err != nil {
		return nil, fmt.Errorf("parsing generated plan: %w", err)
	}
	return &plan, nil
}

// buildPlanPrompt embeds the serialized profile and the fixed
// instruction points into a single natural-language request.
func buildPlanPrompt(profile domain.Profile) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", err
	}

	medical := profile.MedicalConditions
	if medical == "" {
		medical = "None"
	}

	var b strings.Builder
	b.WriteString("As an expert Fitness Scientist and Nutritionist, generate a highly personalized workout and diet plan for a student with the following profile:\n")
	b.Write(profileJSON)
	b.WriteString("\n\nThe plan must be:\n")
	b.WriteString("1. Practical for a student schedule.\n")
	b.WriteString("2. Budget-sensitive.\n")
	fmt.Fprintf(&b, "3. Culturally appropriate (%s cuisine).\n", profile.Cuisine)
	fmt.Fprintf(&b, "4. Safe given medical conditions: %s.\n", medical)
	b.WriteString("\nReturn the response in JSON format matching the schema provided.\n")
	return b.String(), nil
}

// generateContent performs the single generateContent call and returns
// the text of the first candidate.
func (g *geminiGenerator) generateContent(ctx context.Context, prompt string) (string, error) {
	requestBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   planResponseSchema,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	var response generateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}

// cleanResponse strips markdown fences and anything outside the
// outermost JSON object. With a response schema bound this is normally
// a no-op, but some model versions still wrap JSON in fences.
func cleanResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end != -1 && end > start {
		response = response[start : end+1]
	}
	return response
}
