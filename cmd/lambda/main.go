package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"

	"rootline-backend/infrastructure/config"
	"rootline-backend/infrastructure/di"
	"rootline-backend/interfaces/http/rest"
)

// Global variables for Lambda lifecycle management
var (
	chiLambda *chiadapter.ChiLambdaV2
	container *di.Container

	coldStart     = true
	coldStartTime time.Time
)

// init runs during cold start
func init() {
	coldStartTime = time.Now()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	router := rest.NewRouter(rest.RouterDeps{
		Config:        cfg,
		Logger:        container.Logger,
		Metrics:       container.Metrics,
		Registry:      container.Registry,
		IntakeHandler: container.IntakeHandler,
		HerbHandler:   container.HerbHandler,
	})

	mux, ok := router.(*chi.Mux)
	if !ok {
		log.Fatal("Failed to cast router to chi.Mux")
	}
	chiLambda = chiadapter.NewV2(mux)

	log.Printf("Lambda cold start completed in %v", time.Since(coldStartTime))
}

// Handler proxies one API Gateway event through the chi router.
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := chiLambda.ProxyWithContextV2(ctx, req)

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	if coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		resp.Headers["X-Cold-Start-Duration"] = time.Since(coldStartTime).String()
		coldStart = false
	} else {
		resp.Headers["X-Cold-Start"] = "false"
	}
	if req.RequestContext.RequestID != "" {
		resp.Headers["X-Request-ID"] = req.RequestContext.RequestID
	}

	return resp, err
}

func main() {
	lambda.Start(Handler)
}
