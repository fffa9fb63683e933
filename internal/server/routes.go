package server

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"eatreal-api/internal/plan"
)

// generatePlanRequest is the questionnaire submission body.
type generatePlanRequest struct {
	UserProfile *plan.Profile `json:"userProfile"`
	Email       string        `json:"email"`
}

// generatePlanResponse is the uniform API envelope.
type generatePlanResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(LoggerMiddleware)

	e.GET("/", s.livenessHandler)
	e.GET("/health/system", s.systemHealthHandler)

	e.POST("/api/generate-meal-plan", s.generateMealPlanHandler)
	e.OPTIONS("/api/generate-meal-plan", s.preflightHandler)

	return e
}

// generateMealPlanHandler validates the submission and drives the
// pipeline to completion before responding. Generation failures and
// delivery failures both surface here; no partial plan is ever sent.
func (s *Server) generateMealPlanHandler(c echo.Context) error {
	var req generatePlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, generatePlanResponse{Error: "invalid request body"})
	}

	if req.UserProfile == nil {
		return c.JSON(http.StatusBadRequest, generatePlanResponse{Error: "userProfile is required"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, generatePlanResponse{Error: "email is required"})
	}

	if syntax := s.verifier.ParseAddress(req.Email); !syntax.Valid {
		return c.JSON(http.StatusBadRequest, generatePlanResponse{Error: "email address is not valid"})
	}

	// The pipeline runs to completion server-side even if the caller
	// disconnects mid-generation; only process shutdown stops it.
	ctx := context.WithoutCancel(c.Request().Context())
	if err := s.planner.Generate(ctx, *req.UserProfile, req.Email); err != nil {
		log.Error().Err(err).Str("recipient", req.Email).Msg("meal plan pipeline failed")
		return c.JSON(http.StatusInternalServerError, generatePlanResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, generatePlanResponse{Success: true})
}

func (s *Server) preflightHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (s *Server) livenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// systemHealthHandler collects and returns system-level metrics for
// operations. Probes that fail simply leave their section empty.
func (s *Server) systemHealthHandler(c echo.Context) error {
	runtimeInfo := map[string]interface{}{
		"uptime":     time.Since(s.startTime).String(),
		"start_time": s.startTime.Format(time.RFC3339),
		"goroutines": runtime.NumGoroutine(),
	}
	if hInfo, err := host.Info(); err == nil {
		runtimeInfo["os"] = hInfo.OS
		runtimeInfo["platform"] = hInfo.Platform
		runtimeInfo["hostname"] = hInfo.Hostname
	}

	cpuInfo := map[string]interface{}{}
	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		cpuInfo["usage_percent"] = cpuPercent[0]
	}

	memInfo := map[string]interface{}{}
	if v, err := mem.VirtualMemory(); err == nil {
		memInfo["total"] = v.Total
		memInfo["used"] = v.Used
		memInfo["used_percent"] = v.UsedPercent
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "online",
		"runtime": runtimeInfo,
		"cpu":     cpuInfo,
		"memory":  memInfo,
	})
}

// LoggerMiddleware binds a request-scoped logger carrying the request
// ID, generating one when the caller did not supply it.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Set("logger", &logger)

		return next(c)
	}
}
