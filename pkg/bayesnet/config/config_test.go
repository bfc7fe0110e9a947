package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/bayesnet/pkg/bayesnet/builders"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

func TestDefaultLearnIsValid(t *testing.T) {
	if err := DefaultLearn().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Learn
		ok   bool
	}{
		{"negative smoothing", Learn{Smoothing: -1, Scorer: "bic", Seed: Seed{Kind: "empty"}}, false},
		{"unknown scorer", Learn{Scorer: "aic", Seed: Seed{Kind: "empty"}}, false},
		{"unknown seed", Learn{Scorer: "bic", Seed: Seed{Kind: "tan"}}, false},
		{"naive bayes without class", Learn{Scorer: "bic", Seed: Seed{Kind: "naive-bayes"}}, false},
		{"naive bayes with class", Learn{Scorer: "bic", Seed: Seed{Kind: "naive-bayes", ClassAttribute: "play"}}, true},
		{"zero smoothing", Learn{Scorer: "loglikelihood", Seed: Seed{Kind: "empty"}}, true},
	}

	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: want ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

func TestLoadLearn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learn.yaml")
	yaml := "smoothing: 2\nscorer: loglikelihood\nseed:\n  kind: naive-bayes\n  class_attribute: play\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadLearn(path)
	if err != nil {
		t.Fatalf("LoadLearn: %v", err)
	}
	if cfg.Smoothing != 2 {
		t.Errorf("Smoothing = %d, want 2", cfg.Smoothing)
	}
	if cfg.Scorer != "loglikelihood" {
		t.Errorf("Scorer = %q, want loglikelihood", cfg.Scorer)
	}
	if cfg.Seed.ClassAttribute != "play" {
		t.Errorf("ClassAttribute = %q, want play", cfg.Seed.ClassAttribute)
	}
}

func TestLoadLearnFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learn.yaml")
	if err := os.WriteFile(path, []byte("smoothing: 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadLearn(path)
	if err != nil {
		t.Fatalf("LoadLearn: %v", err)
	}
	if cfg.Scorer != "bic" || cfg.Seed.Kind != "empty" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestBuildComponents(t *testing.T) {
	cfg := Learn{Scorer: "bic", Seed: Seed{Kind: "naive-bayes", ClassAttribute: "play"}}

	scorer, err := cfg.BuildScorer()
	if err != nil {
		t.Fatalf("BuildScorer: %v", err)
	}
	if scorer.Name() != "bic" {
		t.Errorf("scorer = %q, want bic", scorer.Name())
	}

	builder, err := cfg.BuildSeed()
	if err != nil {
		t.Fatalf("BuildSeed: %v", err)
	}
	nb, ok := builder.(builders.NaiveBayes)
	if !ok {
		t.Fatalf("builder is %T, want NaiveBayes", builder)
	}
	if nb.ClassAttribute != "play" {
		t.Errorf("ClassAttribute = %q, want play", nb.ClassAttribute)
	}
}
