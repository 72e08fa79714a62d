// pkg/ai/client.go

package ai

import "context"

// Draft is a plant suggestion exactly as the model returned it, before
// local confidence reconciliation.
type Draft struct {
	PlantID     string  `json:"plantId"`
	PlantName   string  `json:"plantName"`
	Confidence  float64 `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
	Usage       string  `json:"usage"`
	Precautions string  `json:"precautions"`
}

// PlantAnalysis is the parsed model reply for a symptom query. Raw keeps
// the unparsed message content for the audit log.
type PlantAnalysis struct {
	Conditions      []string `json:"conditions"`
	Recommendations []Draft  `json:"recommendations"`
	Raw             string   `json:"-"`
}

type QuizQuestion struct {
	QuestionEN    string   `json:"question_en"`
	QuestionHI    string   `json:"question_hi"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	ExplanationEN string   `json:"explanation_en"`
	ExplanationHI string   `json:"explanation_hi"`
}

type Quiz struct {
	TitleEN       string         `json:"title_en"`
	TitleHI       string         `json:"title_hi"`
	DescriptionEN string         `json:"description_en"`
	DescriptionHI string         `json:"description_hi"`
	Questions     []QuizQuestion `json:"questions"`
}

type Client interface {
	// SuggestPlants analyzes a free-text health query against the catalog
	// summary and returns identified conditions plus draft recommendations.
	SuggestPlants(ctx context.Context, catalogSummary, query string) (*PlantAnalysis, error)

	GenerateQuiz(ctx context.Context, topic, difficulty string, numQuestions int) (*Quiz, error)
}
