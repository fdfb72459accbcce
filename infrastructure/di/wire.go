//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
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

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Store         *herbs.Store
	Matcher       *domainservices.Matcher
	Provider      llm.Provider
	Prompts       *prompts.Library
	Registry      *prometheus.Registry
	Metrics       *observability.Metrics
	IntakeService *services.IntakeService
	IntakeHandler *handlers.IntakeHandler
	HerbHandler   *handlers.HerbHandler
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideStore,
	ProvideTextAnalyzer,
	ProvideMatcher,
	ProvideProvider,
	ProvidePromptLibrary,
	ProvideRegistry,
	ProvideMetrics,
	ProvideIntakeService,
	ProvideIntakeHandler,
	ProvideHerbHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
