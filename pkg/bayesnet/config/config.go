// Package config loads and validates the YAML learn configuration and
// builds the components it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/bayesnet/pkg/bayesnet/builders"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
	"github.com/cognicore/bayesnet/pkg/bayesnet/score"
)

// Seed selects the seed-network builder hill climbing starts from.
type Seed struct {
	Kind           string `yaml:"kind"`            // "empty" or "naive-bayes"
	ClassAttribute string `yaml:"class_attribute"` // required for naive-bayes
}

// Learn holds the knobs for one structure-learning run.
type Learn struct {
	Smoothing int    `yaml:"smoothing"`
	Scorer    string `yaml:"scorer"` // "loglikelihood" or "bic"
	Seed      Seed   `yaml:"seed"`
}

// DefaultLearn returns the default learn configuration: Laplace
// smoothing of 1, BIC scoring, empty seed network.
func DefaultLearn() Learn {
	return Learn{
		Smoothing: 1,
		Scorer:    "bic",
		Seed:      Seed{Kind: "empty"},
	}
}

// LoadLearn reads a learn configuration from a YAML file, filling
// omitted fields from the defaults.
func LoadLearn(path string) (Learn, error) {
	cfg := DefaultLearn()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse learn config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c Learn) Validate() error {
	if c.Smoothing < 0 {
		return fmt.Errorf("smoothing must not be negative: %w", internalerr.ErrInvalidConfig)
	}
	switch c.Scorer {
	case "loglikelihood", "bic":
	default:
		return fmt.Errorf("unknown scorer %q: %w", c.Scorer, internalerr.ErrInvalidConfig)
	}
	switch c.Seed.Kind {
	case "empty":
	case "naive-bayes":
		if c.Seed.ClassAttribute == "" {
			return fmt.Errorf("naive-bayes seed needs class_attribute: %w", internalerr.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown seed kind %q: %w", c.Seed.Kind, internalerr.ErrInvalidConfig)
	}
	return nil
}

// BuildScorer constructs the scoring function the configuration names.
func (c Learn) BuildScorer() (score.Scorer, error) {
	switch c.Scorer {
	case "loglikelihood":
		return score.LogLikelihood{}, nil
	case "bic":
		return score.BIC{}, nil
	}
	return nil, fmt.Errorf("unknown scorer %q: %w", c.Scorer, internalerr.ErrInvalidConfig)
}

// BuildSeed constructs the seed builder the configuration names.
func (c Learn) BuildSeed() (builders.Builder, error) {
	switch c.Seed.Kind {
	case "empty":
		return builders.Empty{}, nil
	case "naive-bayes":
		return builders.NaiveBayes{ClassAttribute: c.Seed.ClassAttribute}, nil
	}
	return nil, fmt.Errorf("unknown seed kind %q: %w", c.Seed.Kind, internalerr.ErrInvalidConfig)
}
