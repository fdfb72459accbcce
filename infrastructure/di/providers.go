package di

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"rootline-backend/application/services"
	"rootline-backend/domain/herbs"
	domainservices "rootline-backend/domain/services"
	"rootline-backend/infrastructure/config"
	"rootline-backend/infrastructure/llm"
	"rootline-backend/infrastructure/prompts"
	"rootline-backend/interfaces/http/rest/handlers"
	"rootline-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideStore builds the compiled-in herb knowledge graph
func ProvideStore() (*herbs.Store, error) {
	return herbs.NewStore()
}

// ProvideTextAnalyzer creates the keyword tokenizer
func ProvideTextAnalyzer() domainservices.TextAnalyzer {
	return domainservices.NewDefaultTextAnalyzer()
}

// ProvideMatcher creates the herb matcher
func ProvideMatcher(store *herbs.Store, analyzer domainservices.TextAnalyzer) *domainservices.Matcher {
	return domainservices.NewMatcher(store, analyzer)
}

// ProvideProvider creates the model provider client
func ProvideProvider(cfg *config.Config, logger *zap.Logger) llm.Provider {
	return llm.NewChatClient(llm.ChatConfig{
		APIKey:  cfg.ProviderAPIKey,
		BaseURL: cfg.ProviderBaseURL,
		Model:   cfg.ProviderModel,
		Timeout: time.Duration(cfg.ProviderTimeout) * time.Second,
	}, logger)
}

// ProvidePromptLibrary creates the prompt template library
func ProvidePromptLibrary() *prompts.Library {
	return prompts.NewLibrary()
}

// ProvideRegistry creates the Prometheus registry with process collectors
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics registers the service metrics on the registry
func ProvideMetrics(reg *prometheus.Registry) *observability.Metrics {
	return observability.NewMetrics(reg)
}

// ProvideIntakeService creates the intake orchestration service
func ProvideIntakeService(
	matcher *domainservices.Matcher,
	provider llm.Provider,
	library *prompts.Library,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.IntakeService {
	return services.NewIntakeService(matcher, provider, library, metrics, logger)
}

// ProvideIntakeHandler creates the intake HTTP handler
func ProvideIntakeHandler(intake *services.IntakeService, logger *zap.Logger) *handlers.IntakeHandler {
	return handlers.NewIntakeHandler(intake, logger)
}

// ProvideHerbHandler creates the herb HTTP handler
func ProvideHerbHandler(store *herbs.Store, logger *zap.Logger) *handlers.HerbHandler {
	return handlers.NewHerbHandler(store, logger)
}
