// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

type chatRequest struct {
	Model       string              `json:"model"`
	Messages    []map[string]string `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

// chat performs one completion round-trip and returns the message content.
// Non-2xx replies become *StatusError; 2xx replies with no usable choice
// become ErrMalformedResponse.
func (c *openAI) chat(ctx context.Context, req chatRequest) (string, error) {
	b, _ := json.Marshal(req)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.key)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[ai] endpoint error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return "", &StatusError{Code: resp.StatusCode}
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("[ai] decode envelope: %v", err)
		return "", ErrMalformedResponse
	}
	if len(out.Choices) == 0 {
		return "", ErrMalformedResponse
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", ErrMalformedResponse
	}
	return content, nil
}

func (c *openAI) SuggestPlants(ctx context.Context, catalogSummary, query string) (*PlantAnalysis, error) {
	content, err := c.chat(ctx, chatRequest{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": renderSuggestPrompt(catalogSummary)},
			{"role": "user", "content": query},
		},
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Conditions      *[]string `json:"conditions"`
		Recommendations *[]Draft  `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil {
		log.Printf("[ai] parse suggestion payload: %v / raw: %s", err, content)
		return nil, ErrMalformedResponse
	}
	if parsed.Conditions == nil || parsed.Recommendations == nil {
		log.Printf("[ai] suggestion payload missing fields / raw: %s", content)
		return nil, ErrMalformedResponse
	}
	return &PlantAnalysis{
		Conditions:      *parsed.Conditions,
		Recommendations: *parsed.Recommendations,
		Raw:             content,
	}, nil
}

func (c *openAI) GenerateQuiz(ctx context.Context, topic, difficulty string, numQuestions int) (*Quiz, error) {
	userPrompt := "Generate a quiz about medicinal plants and their uses"
	if topic != "" {
		userPrompt = "Generate a quiz about: " + topic
	}
	content, err := c.chat(ctx, chatRequest{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": renderQuizPrompt(difficulty, numQuestions)},
			{"role": "user", "content": userPrompt},
		},
	})
	if err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(extractJSON(content)), &quiz); err != nil {
		log.Printf("[ai] parse quiz payload: %v / raw: %s", err, content)
		return nil, ErrMalformedResponse
	}
	if len(quiz.Questions) == 0 {
		log.Printf("[ai] quiz payload has no questions / raw: %s", content)
		return nil, ErrMalformedResponse
	}
	return &quiz, nil
}

var fenceRE = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)\\n```")

// extractJSON strips a markdown code fence if the model wrapped its JSON
// reply in one.
func extractJSON(content string) string {
	if m := fenceRE.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return content
}

func renderSuggestPrompt(catalogSummary string) string {
	return fmt.Sprintf(`You are an herbal medicine expert. Analyze user health queries and recommend medicinal plants.

Available plants in database:
%s

Respond with a JSON object containing:
1. "conditions": array of identified health conditions
2. "recommendations": array of plant recommendations with:
   - "plantId": matching plant ID from database
   - "plantName": plant name
   - "confidence": 0.0-1.0 confidence score
   - "reasoning": why this plant is recommended
   - "usage": how to use the plant
   - "precautions": any warnings

IMPORTANT: Only recommend plants from the available database. Be conservative with confidence scores.`, catalogSummary)
}

func renderQuizPrompt(difficulty string, numQuestions int) string {
	if difficulty == "" {
		difficulty = "medium"
	}
	return fmt.Sprintf(`You are an expert in medicinal plants and Ayurveda. Generate a quiz with %d multiple-choice questions about medicinal plants.

Each question should:
- Be educational and accurate
- Have 4 options with only 1 correct answer
- Include a brief explanation for the correct answer
- Be provided in both English and Hindi
- Match the difficulty level: %s

Return the response in this exact JSON format:
{
  "title_en": "Quiz title in English",
  "title_hi": "Quiz title in Hindi",
  "description_en": "Quiz description in English",
  "description_hi": "Quiz description in Hindi",
  "questions": [
    {
      "question_en": "Question in English",
      "question_hi": "Question in Hindi",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct_answer": 0,
      "explanation_en": "Explanation in English",
      "explanation_hi": "Explanation in Hindi"
    }
  ]
}`, numQuestions, difficulty)
}
