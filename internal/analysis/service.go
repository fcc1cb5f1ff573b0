// Package analysis implements the analysis gateway: it turns an
// uploaded chart image plus the caller's strategy rules into a model
// prompt and returns the model's answer untouched.
package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chartwhisperer/internal/config"
	"chartwhisperer/internal/gateway/imaging"
	"chartwhisperer/internal/gateway/provider"
	"chartwhisperer/internal/types"
)

// Config is the configuration for the analysis service.
type Config struct {
	// Provider is the vision model provider.
	Provider provider.VisionProvider
	// Prompts optionally serves hot-reloadable prompt overrides.
	Prompts *config.PromptLoader
	// Logger is the service logger.
	Logger *zerolog.Logger
}

// Service is the analysis gateway.
type Service struct {
	cfg *Config
}

// NewService initializes the analysis service.
func NewService(cfg *Config) (*Service, error) {
	if cfg.Provider == nil {
		return nil, errors.New("analysis service requires a vision provider")
	}
	if cfg.Logger == nil {
		return nil, errors.New("analysis service requires a logger")
	}
	return &Service{cfg: cfg}, nil
}

// Analyze forwards the chart and strategy to the vision model and
// returns its raw text with a freshly minted correlation token. No
// interpretation of the model output happens here.
func (s *Service) Analyze(ctx context.Context, req types.AnalysisRequest) (*types.AnalysisResult, error) {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(req.ContentType)), "image/") {
		return nil, types.E(types.KindInvalidInput, "file must be an image", nil)
	}
	if strings.TrimSpace(req.Strategy) == "" {
		return nil, types.E(types.KindInvalidInput, "strategy is required", nil)
	}

	var profile config.PromptProfile
	if s.cfg.Prompts != nil {
		profile = s.cfg.Prompts.Snapshot()
	}

	text, err := s.cfg.Provider.Analyze(ctx, provider.VisionRequest{
		Prompt:       BuildPrompt(profile.Preamble, req.Strategy),
		ImageDataURL: imaging.DataURL(req.Image, req.ContentType),
		Model:        profile.Model,
		Temperature:  profile.Temperature,
	})
	if err != nil {
		s.cfg.Logger.Error().Err(err).Msg("vision provider call failed")
		return nil, types.E(types.KindUpstreamFailure, "analysis provider request failed", err)
	}

	return &types.AnalysisResult{
		ID:   uuid.NewString(),
		Text: text,
	}, nil
}
