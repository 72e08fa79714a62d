package types

// Recommendation is a reconciled plant suggestion: the model draft with
// confidence recomputed against keyword evidence from the user's query.
// MatchedSymptoms is absent for drafts that resolved to no catalog plant.
type Recommendation struct {
	PlantID         string   `json:"plantId"`
	PlantName       string   `json:"plantName"`
	Confidence      float64  `json:"confidence"`
	Reasoning       string   `json:"reasoning"`
	Usage           string   `json:"usage,omitempty"`
	Precautions     string   `json:"precautions,omitempty"`
	MatchedSymptoms []string `json:"matchedSymptoms,omitempty"`
}

type Result struct {
	Query           string           `json:"query"`
	Conditions      []string         `json:"conditions"`
	Recommendations []Recommendation `json:"recommendations"`
	Disclaimer      string           `json:"disclaimer"`
}
