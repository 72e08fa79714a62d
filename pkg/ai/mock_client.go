// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock returns a canned client for local development without an
// LLM endpoint configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) SuggestPlants(ctx context.Context, catalogSummary, query string) (*PlantAnalysis, error) {
	q := strings.ToLower(query)
	a := &PlantAnalysis{Conditions: []string{}, Recommendations: []Draft{}, Raw: "(mock)"}

	if strings.Contains(q, "burn") || strings.Contains(q, "skin") || strings.Contains(q, "wound") {
		a.Conditions = append(a.Conditions, "skin irritation")
		a.Recommendations = append(a.Recommendations, Draft{
			PlantID: "aloe-vera", PlantName: "Aloe Vera", Confidence: 0.8,
			Reasoning:   "Traditionally applied to minor burns and skin irritation",
			Usage:       "Apply fresh gel to the affected area",
			Precautions: "For external use; patch-test first",
		})
	}
	if strings.Contains(q, "pain") || strings.Contains(q, "joint") || strings.Contains(q, "inflammation") {
		a.Conditions = append(a.Conditions, "inflammation")
		a.Recommendations = append(a.Recommendations, Draft{
			PlantID: "turmeric", PlantName: "Turmeric", Confidence: 0.7,
			Reasoning:   "Curcumin has documented anti-inflammatory effects",
			Usage:       "1-3 grams of powder daily with food",
			Precautions: "May increase bleeding risk with anticoagulants",
		})
	}
	if strings.Contains(q, "infection") || strings.Contains(q, "fungal") {
		a.Conditions = append(a.Conditions, "infection")
		a.Recommendations = append(a.Recommendations, Draft{
			PlantID: "neem", PlantName: "Neem", Confidence: 0.6,
			Reasoning:   "Broad antibacterial and antifungal use in Ayurveda",
			Usage:       "Leaf paste externally; consult a practitioner for internal use",
			Precautions: "Not recommended during pregnancy",
		})
	}
	return a, nil
}

func (m *mockClient) GenerateQuiz(ctx context.Context, topic, difficulty string, numQuestions int) (*Quiz, error) {
	return &Quiz{
		TitleEN:       "Medicinal Plants Basics (mock)",
		TitleHI:       "औषधीय पौधों की मूल बातें",
		DescriptionEN: "A short quiz about common medicinal plants",
		DescriptionHI: "सामान्य औषधीय पौधों पर एक छोटी प्रश्नोत्तरी",
		Questions: []QuizQuestion{
			{
				QuestionEN:    "Which plant's gel is commonly applied to minor burns?",
				QuestionHI:    "किस पौधे का जेल आमतौर पर मामूली जलन पर लगाया जाता है?",
				Options:       []string{"Aloe Vera", "Neem", "Turmeric", "Tulsi"},
				CorrectAnswer: 0,
				ExplanationEN: "Aloe vera gel is a traditional topical remedy for minor burns.",
				ExplanationHI: "एलोवेरा जेल मामूली जलन के लिए पारंपरिक उपचार है।",
			},
		},
	}, nil
}
