package serviceImp

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbaverse/entities"
	"herbaverse/pkg/ai"
	"herbaverse/pkg/catalog"
	"herbaverse/pkg/recommend/service"
	"herbaverse/pkg/recommend/types"
)

type fakeLLM struct {
	calls    int32
	analysis *ai.PlantAnalysis
	err      error
}

func (f *fakeLLM) SuggestPlants(ctx context.Context, summary, query string) (*ai.PlantAnalysis, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *fakeLLM) GenerateQuiz(ctx context.Context, topic, difficulty string, n int) (*ai.Quiz, error) {
	return nil, ai.ErrUnavailable
}

type fakeRepo struct {
	creates int32
	err     error
	created chan *entities.RecommendationLog
}

func (f *fakeRepo) Create(r *entities.RecommendationLog) error {
	atomic.AddInt32(&f.creates, 1)
	if f.created != nil {
		f.created <- r
	}
	return f.err
}

func (f *fakeRepo) ListByUser(uid string, limit int) ([]entities.RecommendationLog, error) {
	return nil, nil
}

func newSvc(llm *fakeLLM, repo *fakeRepo) *Svc {
	return New(catalog.New(catalog.Builtin()), llm, repo)
}

func analysisWith(drafts ...ai.Draft) *ai.PlantAnalysis {
	return &ai.PlantAnalysis{
		Conditions:      []string{"test condition"},
		Recommendations: drafts,
		Raw:             `{"conditions":[],"recommendations":[]}`,
	}
}

func TestSuggestBlendsKeywordCoverage(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(ai.Draft{
		PlantID: "aloe-vera", PlantName: "Aloe Vera", Confidence: 0.8,
	})}
	svc := newSvc(llm, &fakeRepo{})

	res, err := svc.Suggest(context.Background(), "", "I have a burn on my hand, what gel can help?")
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)

	rec := res.Recommendations[0]
	// matched "burn" and "gel" out of 7 keywords: (0.8 + 2/7) / 2 = 0.54
	assert.Equal(t, []string{"burn", "gel"}, rec.MatchedSymptoms)
	assert.InDelta(t, 0.54, rec.Confidence, 1e-9)
	assert.Equal(t, Disclaimer, res.Disclaimer)
	assert.Equal(t, "I have a burn on my hand, what gel can help?", res.Query)
}

func TestSuggestNoKeywordMatchesHalvesDraft(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(ai.Draft{
		PlantID: "turmeric", PlantName: "Turmeric", Confidence: 0.6,
	})}
	svc := newSvc(llm, &fakeRepo{})

	res, err := svc.Suggest(context.Background(), "", "I feel tired all the time")
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)
	assert.InDelta(t, 0.3, res.Recommendations[0].Confidence, 1e-9)
	assert.Nil(t, res.Recommendations[0].MatchedSymptoms)
}

func TestSuggestFullCoverage(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(ai.Draft{
		PlantID: "aloe-vera", PlantName: "Aloe Vera", Confidence: 0.5,
	})}
	svc := newSvc(llm, &fakeRepo{})

	res, err := svc.Suggest(context.Background(), "", "burn skin cut wound heal soothing gel")
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)
	// full coverage: (0.5 + 1.0) / 2 = 0.75
	assert.InDelta(t, 0.75, res.Recommendations[0].Confidence, 1e-9)
	assert.Len(t, res.Recommendations[0].MatchedSymptoms, 7)
}

func TestSuggestConfidenceNeverExceedsCap(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(
		ai.Draft{PlantID: "aloe-vera", PlantName: "Aloe Vera", Confidence: 2.0},
		ai.Draft{PlantID: "turmeric", PlantName: "Turmeric", Confidence: 5.0},
	)}
	svc := newSvc(llm, &fakeRepo{})

	res, err := svc.Suggest(context.Background(), "", "burn skin cut wound heal soothing gel")
	require.NoError(t, err)
	for _, rec := range res.Recommendations {
		assert.LessOrEqual(t, rec.Confidence, 0.95)
	}
}

func TestSuggestUnresolvedDraftPassesThrough(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(ai.Draft{
		PlantID: "lavender", PlantName: "Lavender", Confidence: 0.73,
		Reasoning: "calming",
	})}
	svc := newSvc(llm, &fakeRepo{})

	res, err := svc.Suggest(context.Background(), "", "I cannot sleep")
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)

	rec := res.Recommendations[0]
	assert.Equal(t, 0.73, rec.Confidence)
	assert.Nil(t, rec.MatchedSymptoms)
	assert.Equal(t, "calming", rec.Reasoning)
}

func TestSuggestRankingDescendingAndStable(t *testing.T) {
	// Unresolved drafts keep their draft confidence, so ordering is fully
	// controlled by the inputs; u1/u2 tie and must keep their order.
	llm := &fakeLLM{analysis: analysisWith(
		ai.Draft{PlantID: "u1", PlantName: "U1", Confidence: 0.4},
		ai.Draft{PlantID: "u2", PlantName: "U2", Confidence: 0.4},
		ai.Draft{PlantID: "u3", PlantName: "U3", Confidence: 0.7},
	)}
	svc := newSvc(llm, &fakeRepo{})

	res, err := svc.Suggest(context.Background(), "", "anything")
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 3)

	assert.Equal(t, "u3", res.Recommendations[0].PlantID)
	assert.Equal(t, "u1", res.Recommendations[1].PlantID)
	assert.Equal(t, "u2", res.Recommendations[2].PlantID)
	for i := 1; i < len(res.Recommendations); i++ {
		assert.GreaterOrEqual(t, res.Recommendations[i-1].Confidence, res.Recommendations[i].Confidence)
	}
}

func TestSuggestEmptyQueryFailsBeforeModelCall(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith()}
	svc := newSvc(llm, &fakeRepo{})

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := svc.Suggest(context.Background(), "u1", q)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	}
	assert.Zero(t, atomic.LoadInt32(&llm.calls))
}

func TestSuggestUpstreamErrorPropagates(t *testing.T) {
	llm := &fakeLLM{err: ai.ErrMalformedResponse}
	svc := newSvc(llm, &fakeRepo{})

	res, err := svc.Suggest(context.Background(), "", "I have a burn")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestSuggestPersistenceFailureDoesNotAffectResult(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(ai.Draft{
		PlantID: "aloe-vera", PlantName: "Aloe Vera", Confidence: 0.8,
	})}
	repo := &fakeRepo{err: assert.AnError, created: make(chan *entities.RecommendationLog, 1)}
	svc := newSvc(llm, repo)

	res, err := svc.Suggest(context.Background(), "user-1", "I have a burn")
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)

	// the write is attempted even though it fails
	select {
	case <-repo.created:
	case <-time.After(2 * time.Second):
		t.Fatal("audit write never attempted")
	}
}

func TestSuggestAuditRowContents(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(ai.Draft{
		PlantID: "aloe-vera", PlantName: "Aloe Vera", Confidence: 0.8,
	})}
	repo := &fakeRepo{created: make(chan *entities.RecommendationLog, 1)}
	svc := newSvc(llm, repo)

	_, err := svc.Suggest(context.Background(), "user-1", "I Have A BURN")
	require.NoError(t, err)

	var row *entities.RecommendationLog
	select {
	case row = <-repo.created:
	case <-time.After(2 * time.Second):
		t.Fatal("audit write never attempted")
	}

	assert.Equal(t, "user-1", row.UserID)
	assert.Equal(t, "I Have A BURN", row.QueryText) // verbatim, not normalized

	var recs []types.Recommendation
	require.NoError(t, json.Unmarshal([]byte(row.PlantsJSON), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "aloe-vera", recs[0].PlantID)
}

func TestSuggestNoAuditWithoutUser(t *testing.T) {
	llm := &fakeLLM{analysis: analysisWith(ai.Draft{
		PlantID: "aloe-vera", PlantName: "Aloe Vera", Confidence: 0.8,
	})}
	repo := &fakeRepo{}
	svc := newSvc(llm, repo)

	_, err := svc.Suggest(context.Background(), "", "I have a burn")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&repo.creates))
}
