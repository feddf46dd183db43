// Package passgen generates random passwords from a fixed set of character
// classes and rates their strength.
package passgen

import "errors"

// NoOptionsMessage is the text shown to users when every class is disabled.
const NoOptionsMessage = "Please select at least one option"

// ReasonNoCharacterTypes is the machine-readable code for ErrNoCharacterTypes.
const ReasonNoCharacterTypes = "no_character_types"

var ErrNoCharacterTypes = errors.New("at least one character type must be selected")

// Config configures a single generation request.
type Config struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultConfig returns 12 characters with every class enabled.
func DefaultConfig() Config {
	return Config{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Result is a generated password together with its strength rating.
type Result struct {
	Password string
	Strength Strength
}

// Generator produces passwords using the configured Sampler.
type Generator struct {
	sampler Sampler
}

// NewGenerator creates a Generator. A nil sampler selects MathSampler.
func NewGenerator(s Sampler) *Generator {
	if s == nil {
		s = MathSampler{}
	}
	return &Generator{sampler: s}
}

// Generate builds a password of cfg.Length characters (clamped) drawn with
// replacement from the enabled classes, and scores it.
func (g *Generator) Generate(cfg Config) (Result, error) {
	length := ClampLength(cfg.Length)

	pool := BuildPool(cfg)
	if pool == "" {
		return Result{}, ErrNoCharacterTypes
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = pool[g.sampler.NextIndex(len(pool))]
	}

	password := string(result)
	return Result{
		Password: password,
		Strength: Score(password),
	}, nil
}

var defaultGenerator = NewGenerator(nil)

// GeneratePassword runs the whole pipeline with the default generator.
func GeneratePassword(cfg Config) (Result, error) {
	return defaultGenerator.Generate(cfg)
}
