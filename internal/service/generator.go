package service

import (
	"log/slog"
	"math"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/passgen"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *passgen.Generator
	logger    *slog.Logger
}

// NewGeneratorService creates a new GeneratorService. A nil sampler uses the
// default non-cryptographic source.
func NewGeneratorService(sampler passgen.Sampler, logger *slog.Logger) *GeneratorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeneratorService{
		generator: passgen.NewGenerator(sampler),
		logger:    logger,
	}
}

// Generate produces a password based on the given request.
// It returns passgen.ErrNoCharacterTypes when every class is disabled.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := passgen.Config{
		Length:    lengthFromRequest(req.Length),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	res, err := s.generator.Generate(cfg)
	if err != nil {
		s.logger.Debug("password generation rejected", "length", cfg.Length, "error", err)
		return model.GenerateResponse{}, err
	}

	s.logger.Debug("password generated",
		"length", len(res.Password),
		"classes", passgen.EnabledClasses(cfg),
		"strength", res.Strength,
	)

	return model.GenerateResponse{
		Password: res.Password,
		Length:   len(res.Password),
		Strength: string(res.Strength),
	}, nil
}

// Strength rates an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	return model.StrengthResponse{
		Strength: string(passgen.Score(req.Password)),
		Score:    passgen.Points(req.Password),
		MaxScore: passgen.MaxPoints,
	}
}

// lengthFromRequest normalizes a decoded JSON length: numbers are truncated
// and clamped, strings go through passgen.ParseLength, anything else is the default.
func lengthFromRequest(v any) int {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return passgen.DefaultLength
		}
		if n > math.MaxInt32 {
			return passgen.MaxLength
		}
		if n < math.MinInt32 {
			return passgen.MinLength
		}
		return passgen.ClampLength(int(n))
	case string:
		return passgen.ParseLength(n)
	case int:
		return passgen.ClampLength(n)
	default:
		return passgen.DefaultLength
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
