package serviceImp

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sort"
	"strings"

	"herbaverse/entities"
	"herbaverse/pkg/ai"
	"herbaverse/pkg/catalog"
	"herbaverse/pkg/recommend/repository"
	"herbaverse/pkg/recommend/service"
	"herbaverse/pkg/recommend/types"
)

const Disclaimer = "This is for educational purposes only. Always consult with healthcare professionals before using medicinal plants."

// confidenceCap keeps the blended score away from near-certainty: the
// keyword heuristic is evidence, not a diagnosis.
const confidenceCap = 0.95

type Svc struct {
	cat  *catalog.Catalog
	llm  ai.Client
	repo repository.RecommendRepository
}

func New(cat *catalog.Catalog, llm ai.Client, repo repository.RecommendRepository) *Svc {
	return &Svc{cat: cat, llm: llm, repo: repo}
}

func (s *Svc) Suggest(ctx context.Context, userID, query string) (*types.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, service.ErrInvalidInput
	}

	// The lowered/trimmed form is used only for keyword containment; the
	// model and the audit row always get the query verbatim.
	normalized := strings.ToLower(strings.TrimSpace(query))

	analysis, err := s.llm.SuggestPlants(ctx, s.cat.Summary(), query)
	if err != nil {
		return nil, err
	}

	recs := s.reconcile(normalized, analysis.Recommendations)
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Confidence > recs[j].Confidence })

	if userID != "" {
		go s.audit(userID, query, recs, analysis.Raw)
	}

	return &types.Result{
		Query:           query,
		Conditions:      analysis.Conditions,
		Recommendations: recs,
		Disclaimer:      Disclaimer,
	}, nil
}

// reconcile blends each draft's model confidence with keyword coverage
// from the user's own words. Drafts that resolve to no catalog plant pass
// through untouched; a single bad entry never fails the list.
func (s *Svc) reconcile(normalized string, drafts []ai.Draft) []types.Recommendation {
	out := make([]types.Recommendation, 0, len(drafts))
	for _, d := range drafts {
		rec := types.Recommendation{
			PlantID:     d.PlantID,
			PlantName:   d.PlantName,
			Confidence:  d.Confidence,
			Reasoning:   d.Reasoning,
			Usage:       d.Usage,
			Precautions: d.Precautions,
		}
		p, ok := s.cat.Find(d.PlantID, d.PlantName)
		if !ok {
			out = append(out, rec)
			continue
		}

		matched := make([]string, 0, len(p.ConfidenceKeywords))
		for _, kw := range p.ConfidenceKeywords {
			// Deliberately permissive: substring containment, not whole-word
			// matching. "heal" inside "healthy" counts.
			if strings.Contains(normalized, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}

		coverage := 0.0
		if n := len(p.ConfidenceKeywords); n > 0 {
			coverage = float64(len(matched)) / float64(n)
		}

		// Draft confidence is trusted as-is, not clamped to [0,1]; the cap
		// after averaging is the only guard.
		final := math.Min(confidenceCap, (d.Confidence+coverage)/2)
		rec.Confidence = math.Round(final*100) / 100
		if len(matched) > 0 {
			rec.MatchedSymptoms = matched
		}
		out = append(out, rec)
	}
	return out
}

// audit is the fire-and-forget persistence sink. Failures reach the log
// and nothing else.
func (s *Svc) audit(uid, query string, recs []types.Recommendation, raw string) {
	b, err := json.Marshal(recs)
	if err != nil {
		log.Printf("[recommend] marshal audit row: %v", err)
		return
	}
	row := &entities.RecommendationLog{
		UserID:     uid,
		QueryText:  query,
		PlantsJSON: string(b),
		AIResponse: raw,
	}
	if err := s.repo.Create(row); err != nil {
		log.Printf("[recommend] store recommendation: %v", err)
	}
}

func (s *Svc) History(userID string, limit int) ([]entities.RecommendationLog, error) {
	return s.repo.ListByUser(userID, limit)
}
