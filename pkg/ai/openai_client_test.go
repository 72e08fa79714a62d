package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServer returns a test endpoint answering every completion request
// with the given message content.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		envelope := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(envelope)
	}))
}

func statusServer(code int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream says no", code)
	}))
}

func TestSuggestPlantsParsesPayload(t *testing.T) {
	payload := `{"conditions":["burns"],"recommendations":[{"plantId":"aloe-vera","plantName":"Aloe Vera","confidence":0.8,"reasoning":"soothing","usage":"topical","precautions":"external only"}]}`
	srv := chatServer(t, payload)
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	a, err := c.SuggestPlants(context.Background(), "summary", "I have a burn")
	require.NoError(t, err)

	assert.Equal(t, []string{"burns"}, a.Conditions)
	require.Len(t, a.Recommendations, 1)
	assert.Equal(t, "aloe-vera", a.Recommendations[0].PlantID)
	assert.Equal(t, 0.8, a.Recommendations[0].Confidence)
	assert.Equal(t, payload, a.Raw)
}

func TestSuggestPlantsRejectsNonJSONContent(t *testing.T) {
	srv := chatServer(t, "Sorry, I cannot answer that in JSON.")
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.SuggestPlants(context.Background(), "summary", "query")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSuggestPlantsRejectsMissingFields(t *testing.T) {
	srv := chatServer(t, `{"conditions":["burns"]}`)
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.SuggestPlants(context.Background(), "summary", "query")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSuggestPlantsRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.SuggestPlants(context.Background(), "summary", "query")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestStatusCodesSurfaceAsStatusError(t *testing.T) {
	for _, code := range []int{429, 402, 500, 503} {
		srv := statusServer(code)
		c := NewOpenAI(srv.URL, "test-key", "test-model")
		_, err := c.SuggestPlants(context.Background(), "summary", "query")
		srv.Close()

		var se *StatusError
		require.ErrorAs(t, err, &se, "code %d", code)
		assert.Equal(t, code, se.Code)
	}
}

func TestUnreachableEndpoint(t *testing.T) {
	srv := statusServer(200)
	srv.Close() // kill it before use

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.SuggestPlants(context.Background(), "summary", "query")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateQuizStripsCodeFence(t *testing.T) {
	quizJSON := `{"title_en":"T","title_hi":"","description_en":"","description_hi":"","questions":[{"question_en":"Q","question_hi":"","options":["a","b","c","d"],"correct_answer":2,"explanation_en":"E","explanation_hi":""}]}`
	srv := chatServer(t, "```json\n"+quizJSON+"\n```")
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	q, err := c.GenerateQuiz(context.Background(), "topic", "easy", 1)
	require.NoError(t, err)
	assert.Equal(t, "T", q.TitleEN)
	require.Len(t, q.Questions, 1)
	assert.Equal(t, 2, q.Questions[0].CorrectAnswer)
}

func TestGenerateQuizRejectsEmptyQuestions(t *testing.T) {
	srv := chatServer(t, `{"title_en":"T","questions":[]}`)
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.GenerateQuiz(context.Background(), "topic", "easy", 1)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractJSONPassthrough(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON("```\n{\"a\":1}\n```"))
}
