/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the
plan pipeline behind the API routes.
*/
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	emailverifier "github.com/AfterShip/email-verifier"
	_ "github.com/joho/godotenv/autoload"

	"eatreal-api/internal/config"
	"eatreal-api/internal/mailer"
	"eatreal-api/internal/openai"
	"eatreal-api/internal/plan"
)

// PlanService runs the generation-and-delivery pipeline for one
// request. Satisfied by *plan.Service; faked in handler tests.
type PlanService interface {
	Generate(ctx context.Context, profile plan.Profile, email string) error
}

// Server defines the configuration and dependencies for the HTTP
// service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// planner drives the nutrition-plan pipeline.
	planner PlanService

	// verifier screens recipient addresses before any generation
	// budget is spent.
	verifier *emailverifier.Verifier

	// startTime feeds the system health endpoint.
	startTime time.Time
}

// NewServer initializes the pipeline from the process configuration
// and returns a configured *http.Server with production-ready network
// timeouts.
func NewServer(cfg *config.Config) *http.Server {
	completer := openai.NewClient(cfg.OpenAIAPIKey)
	smtpMailer := mailer.NewSMTPMailer(cfg)
	logo := plan.LoadLogoBase64(cfg.LogoPath)

	newApp := &Server{
		port:      cfg.Port,
		planner:   plan.NewService(completer, smtpMailer, logo),
		verifier:  emailverifier.NewVerifier(),
		startTime: time.Now(),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newApp.port),
		Handler:      newApp.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // four sequential model calls complete before the response
	}

	return server
}
