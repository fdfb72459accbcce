package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rootline-backend/domain/herbs"
	domainservices "rootline-backend/domain/services"
	"rootline-backend/infrastructure/llm"
	"rootline-backend/infrastructure/prompts"
	pkgerrors "rootline-backend/pkg/errors"
	"rootline-backend/pkg/observability"
)

// capturingProvider records every prompt it is asked to complete.
type capturingProvider struct {
	mu      sync.Mutex
	prompts []string
	fail    bool
}

func (p *capturingProvider) Generate(_ context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fail {
		return "", fmt.Errorf("upstream unavailable")
	}
	p.prompts = append(p.prompts, prompt)
	return fmt.Sprintf("generated section %d", len(p.prompts)), nil
}

func newTestIntakeService(t *testing.T, provider llm.Provider) *IntakeService {
	t.Helper()

	store, err := herbs.NewStore()
	require.NoError(t, err)

	return NewIntakeService(
		domainservices.NewMatcher(store, nil),
		provider,
		prompts.NewLibrary(),
		observability.NewMetrics(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func TestIntakeService_Match(t *testing.T) {
	svc := newTestIntakeService(t, llm.GenerateFunc(func(context.Context, string) (string, error) {
		t.Fatal("match preview must not call the provider")
		return "", nil
	}))

	result := svc.Match(IntakeRequest{
		Symptoms:   "fatigue and brain fog",
		Goals:      "more energy and focus",
		Traditions: []herbs.Tradition{herbs.TraditionAyurvedic},
	})

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "brahmi", result.Matches[0].ID)
	for _, e := range result.Connections {
		assert.NotEmpty(t, e.Label)
	}
}

func TestIntakeService_Match_EmptyIntake(t *testing.T) {
	svc := newTestIntakeService(t, llm.GenerateFunc(func(context.Context, string) (string, error) {
		return "", nil
	}))

	result := svc.Match(IntakeRequest{})

	assert.Empty(t, result.Matches)
	assert.Empty(t, result.Connections)
}

func TestIntakeService_GeneratePlan(t *testing.T) {
	provider := &capturingProvider{}
	svc := newTestIntakeService(t, provider)

	plan, err := svc.GeneratePlan(context.Background(), IntakeRequest{
		Symptoms:     "fatigue and brain fog",
		Goals:        "more energy and focus",
		Restrictions: "nightshades",
		Traditions:   []herbs.Tradition{herbs.TraditionAyurvedic},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	assert.NotEmpty(t, plan.GeneratedAt)
	assert.NotEmpty(t, plan.HerbalProtocol)
	assert.NotEmpty(t, plan.DailyRituals)
	assert.NotEmpty(t, plan.Nourishment)
	assert.NotEmpty(t, plan.MindAndSpirit)
	assert.NotEmpty(t, plan.Matches)

	// One provider call per plan section.
	assert.Len(t, provider.prompts, len(prompts.SectionNames))

	// Every prompt carries the rendered intake and the matched herb context.
	for _, prompt := range provider.prompts {
		assert.Contains(t, prompt, "fatigue and brain fog")
		assert.Contains(t, prompt, "Brahmi")
		assert.NotContains(t, prompt, "{{", "unsubstituted placeholder left in prompt")
	}
}

func TestIntakeService_GeneratePlan_ContraindicationInContext(t *testing.T) {
	provider := &capturingProvider{}
	svc := newTestIntakeService(t, provider)

	_, err := svc.GeneratePlan(context.Background(), IntakeRequest{
		Symptoms:     "stress and fatigue",
		Restrictions: "nightshade sensitivity",
		Traditions:   []herbs.Tradition{herbs.TraditionAyurvedic},
	})
	require.NoError(t, err)

	herbal := ""
	for _, prompt := range provider.prompts {
		if strings.Contains(prompt, "herbal protocol") {
			herbal = prompt
		}
	}
	require.NotEmpty(t, herbal)
	assert.Contains(t, herbal, "Ashwagandha")
	assert.Contains(t, herbal, "CONTRAINDICATED")
}

func TestIntakeService_GeneratePlan_ProviderFailure(t *testing.T) {
	svc := newTestIntakeService(t, &capturingProvider{fail: true})

	plan, err := svc.GeneratePlan(context.Background(), IntakeRequest{
		Symptoms: "poor sleep and stress",
	})

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, pkgerrors.IsExternal(err))
}

func TestBuildHerbContext(t *testing.T) {
	store, err := herbs.NewStore()
	require.NoError(t, err)
	ash, ok := store.ByID("ashwagandha")
	require.True(t, ok)

	t.Run("empty matches", func(t *testing.T) {
		ctx := BuildHerbContext(nil)
		assert.Contains(t, ctx, "No herbs")
	})

	t.Run("flags contraindicated herbs", func(t *testing.T) {
		ctx := BuildHerbContext([]domainservices.HerbMatch{
			{Herb: ash, Score: 6, Contraindicated: true},
		})
		assert.Contains(t, ctx, "Ashwagandha")
		assert.Contains(t, ctx, "Withania somnifera")
		assert.Contains(t, ctx, "CONTRAINDICATED")
	})

	t.Run("plain match has no flag", func(t *testing.T) {
		ctx := BuildHerbContext([]domainservices.HerbMatch{
			{Herb: ash, Score: 6},
		})
		assert.NotContains(t, ctx, "CONTRAINDICATED")
	})
}
