package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const chatContext = `Context:
In today's busy lifestyle, maintaining a balanced diet can be challenging. This app helps users plan meals, track their nutrition, and promote healthy eating habits by providing personalized meal plans based on dietary preferences and goals.
Project Goal:
Develop a Meal Planning App that allows users to create meal plans, track their daily intake, and receive nutritional insights to promote healthy eating.`

// AssistantService calls the generative-language API for the recipe
// generator and the chat helper.
type AssistantService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewAssistantService() *AssistantService {
	base := os.Getenv("GEMINI_API_URL")
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &AssistantService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: base,
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   "gemini-1.5-flash",
	}
}

type AssistantGroceryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Icon     string `json:"icon"`
}

// RecipeGeneration is the fixed JSON shape the model is asked to emit.
type RecipeGeneration struct {
	Recipe       string                 `json:"recipe"`
	GroceryItems []AssistantGroceryItem `json:"groceryItems"`
}

// StripCodeFences removes markdown code-fence wrapping from a model
// response so a fenced payload parses the same as a bare one.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// GenerateRecipe asks the model for a recipe plus grocery list for the
// given meal description. HTTP or parse failure is recoverable: the
// caller gets an empty grocery list and a descriptive error, never a
// panic or an unhandled decode failure.
func (s *AssistantService) GenerateRecipe(input string) (*RecipeGeneration, error) {
	prompt := fmt.Sprintf(`Generate a recipe and grocery list for the following meal plan: %s.
Provide the recipe and the grocery list in the following format:
{
  "recipe": "recipe_instructions_here",
  "groceryItems": [
    {
      "id": "unique_id",
      "name": "item_name",
      "category": "item_category",
      "quantity": "amount_needed",
      "icon": "emoji_icon"
    }
  ]
}`, input)

	empty := &RecipeGeneration{GroceryItems: []AssistantGroceryItem{}}

	text, err := s.generate(prompt)
	if err != nil {
		return empty, err
	}

	var gen RecipeGeneration
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &gen); err != nil {
		return empty, fmt.Errorf("failed to parse model response: %w", err)
	}
	if gen.GroceryItems == nil {
		gen.GroceryItems = []AssistantGroceryItem{}
	}
	for i := range gen.GroceryItems {
		if gen.GroceryItems[i].ID == "" {
			gen.GroceryItems[i].ID = uuid.NewString()
		}
	}
	return &gen, nil
}

// Chat answers a meal-planning question with the app's context
// preamble. The reply is plain text.
func (s *AssistantService) Chat(message string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nQuestion: %s", chatContext, message)
	return s.generate(prompt)
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *AssistantService) generate(prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
	}
	b, _ := json.Marshal(body)

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generative API request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generative API response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("generative API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("generative API error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out generateResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode generative API response error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from generative API")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
