package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rootline-backend/domain/herbs"
	domainservices "rootline-backend/domain/services"
	"rootline-backend/infrastructure/llm"
	"rootline-backend/infrastructure/prompts"
	pkgerrors "rootline-backend/pkg/errors"
	"rootline-backend/pkg/observability"
	"rootline-backend/pkg/utils"
)

// IntakeRequest is a validated wellness intake as the handlers hand it to
// the application layer. Tradition values are already recognized enum
// members; free-text fields may be empty.
type IntakeRequest struct {
	Symptoms     string
	Goals        string
	Restrictions string
	Traditions   []herbs.Tradition
}

// MatchResult is the flattened, serializable form of one herb match.
type MatchResult struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ScientificName  string            `json:"scientificName"`
	Score           int               `json:"score"`
	Traditions      []herbs.Tradition `json:"traditions"`
	Energetics      []string          `json:"energetics"`
	Actions         []string          `json:"actions"`
	Uses            []string          `json:"uses"`
	Cautions        []string          `json:"cautions"`
	Pairings        []string          `json:"pairings"`
	MatchedKeywords []string          `json:"matchedKeywords"`
	Contraindicated bool              `json:"contraindicated"`
}

// MatchResponse carries a preview match result: the ranked herbs plus the
// synergy edges connecting them.
type MatchResponse struct {
	Matches     []MatchResult    `json:"matches"`
	Connections []herbs.HerbEdge `json:"connections"`
}

// WellnessPlan is the joined output of the four prompt invocations plus the
// match evidence it was built from.
type WellnessPlan struct {
	ID             string           `json:"id"`
	HerbalProtocol string           `json:"herbalProtocol"`
	DailyRituals   string           `json:"dailyRituals"`
	Nourishment    string           `json:"nourishment"`
	MindAndSpirit  string           `json:"mindAndSpirit"`
	Matches        []MatchResult    `json:"matches"`
	Connections    []herbs.HerbEdge `json:"connections"`
	GeneratedAt    string           `json:"generatedAt"`
}

// IntakeService orchestrates one intake: rank herbs, derive the relevant
// graph edges, then fan four prompt invocations out to the model provider
// and join them into a plan. The matcher part is pure and reusable on its
// own for client-side previews.
type IntakeService struct {
	matcher  *domainservices.Matcher
	provider llm.Provider
	prompts  *prompts.Library
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewIntakeService creates an intake service.
func NewIntakeService(
	matcher *domainservices.Matcher,
	provider llm.Provider,
	library *prompts.Library,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *IntakeService {
	return &IntakeService{
		matcher:  matcher,
		provider: provider,
		prompts:  library,
		metrics:  metrics,
		logger:   logger,
	}
}

// Match runs the matcher for a preview without touching the provider.
func (s *IntakeService) Match(req IntakeRequest) MatchResponse {
	matches := s.matcher.MatchHerbs(matchQuery(req))
	connections := s.matcher.GraphConnectionsFor(matches)

	s.recordMatch(matches)

	return MatchResponse{
		Matches:     flattenMatches(matches),
		Connections: connections,
	}
}

// GeneratePlan produces a full wellness plan. Any provider failure fails
// the whole plan; there is no retry and no partial result.
func (s *IntakeService) GeneratePlan(ctx context.Context, req IntakeRequest) (*WellnessPlan, error) {
	matches := s.matcher.MatchHerbs(matchQuery(req))
	connections := s.matcher.GraphConnectionsFor(matches)
	s.recordMatch(matches)

	substitutions := map[string]string{
		"symptoms":     req.Symptoms,
		"goals":        req.Goals,
		"restrictions": req.Restrictions,
		"traditions":   traditionsText(req.Traditions),
		"herb_context": BuildHerbContext(matches),
	}

	sections := make(map[string]string, len(prompts.SectionNames))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, section := range prompts.SectionNames {
		section := section
		g.Go(func() error {
			prompt, err := s.prompts.Render(section, substitutions)
			if err != nil {
				return pkgerrors.NewInternalError("failed to render prompt").WithCause(err)
			}

			start := time.Now()
			text, err := s.provider.Generate(gctx, prompt)
			if err != nil {
				s.metrics.RecordProviderCall(section, "error", time.Since(start))
				s.logger.Error("Provider invocation failed",
					zap.String("section", section),
					zap.Error(err),
				)
				return err
			}
			s.metrics.RecordProviderCall(section, "ok", time.Since(start))

			mu.Lock()
			sections[section] = text
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.metrics.RecordIntake("error")
		if pkgerrors.IsAppError(err) {
			return nil, err
		}
		return nil, pkgerrors.NewExternalError("model provider", err)
	}

	s.metrics.RecordIntake("ok")

	plan := &WellnessPlan{
		ID:             uuid.New().String(),
		HerbalProtocol: sections[prompts.SectionHerbalProtocol],
		DailyRituals:   sections[prompts.SectionDailyRituals],
		Nourishment:    sections[prompts.SectionNourishment],
		MindAndSpirit:  sections[prompts.SectionMindAndSpirit],
		Matches:        flattenMatches(matches),
		Connections:    connections,
		GeneratedAt:    utils.NowRFC3339(),
	}

	s.logger.Info("Wellness plan generated",
		zap.String("planID", plan.ID),
		zap.Int("matches", len(plan.Matches)),
		zap.Int("connections", len(plan.Connections)),
	)

	return plan, nil
}

// recordMatch feeds matcher metrics.
func (s *IntakeService) recordMatch(matches []domainservices.HerbMatch) {
	contraindicated := 0
	for _, m := range matches {
		if m.Contraindicated {
			contraindicated++
		}
	}
	s.metrics.RecordMatch(len(matches), contraindicated)
}

// matchQuery converts the request into the domain query.
func matchQuery(req IntakeRequest) domainservices.MatchQuery {
	return domainservices.MatchQuery{
		Symptoms:     req.Symptoms,
		Goals:        req.Goals,
		Restrictions: req.Restrictions,
		Traditions:   req.Traditions,
	}
}

// flattenMatches converts domain matches into serializable records.
func flattenMatches(matches []domainservices.HerbMatch) []MatchResult {
	results := make([]MatchResult, 0, len(matches))
	for _, match := range matches {
		h := match.Herb
		results = append(results, MatchResult{
			ID:              h.ID,
			Name:            h.Name,
			ScientificName:  h.ScientificName,
			Score:           match.Score,
			Traditions:      h.Traditions,
			Energetics:      h.Energetics,
			Actions:         h.Actions,
			Uses:            h.Uses,
			Cautions:        h.Cautions,
			Pairings:        h.Pairings,
			MatchedKeywords: match.MatchedKeywords,
			Contraindicated: match.Contraindicated,
		})
	}
	return results
}

// traditionsText renders the selected traditions for prompt substitution.
// An empty selection reads as all traditions, matching the matcher.
func traditionsText(selected []herbs.Tradition) string {
	if len(selected) == 0 {
		selected = herbs.AllTraditions
	}
	names := make([]string, 0, len(selected))
	for _, t := range selected {
		names = append(names, t.DisplayName())
	}
	return strings.Join(names, ", ")
}
