// bn-query learns a network from a CSV dataset and answers one
// probability query against it. Queries look like "A=yes,B=no" for a
// joint probability or "A=yes|B=no,C=hot" for a conditional one.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cognicore/bayesnet/pkg/bayesnet"
	"github.com/cognicore/bayesnet/pkg/bayesnet/config"
	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/query"
)

func main() {
	var (
		input   = flag.String("input", "", "Path to CSV dataset (required)")
		q       = flag.String("query", "", "Query, e.g. 'A=yes,B=no' or 'A=yes|B=no' (required)")
		cfgPath = flag.String("config", "", "Optional: learn configuration YAML")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *q == "" {
		log.Fatal("--query required")
	}

	cfg := config.DefaultLearn()
	if *cfgPath != "" {
		loaded, err := config.LoadLearn(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	ds, err := data.LoadCSV(*input)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	engine, err := bayesnet.FromConfig(cfg, nil)
	if err != nil {
		log.Fatalf("configure engine: %v", err)
	}

	model, err := engine.LearnFrom(ds)
	if err != nil {
		log.Fatalf("learn: %v", err)
	}

	targetPart, conditionPart, conditional := strings.Cut(*q, "|")
	target, err := parseVariables(ds, targetPart)
	if err != nil {
		log.Fatalf("parse query: %v", err)
	}

	var p float64
	if conditional {
		condition, err := parseVariables(ds, conditionPart)
		if err != nil {
			log.Fatalf("parse query: %v", err)
		}
		p, err = model.ConditionalProbability(target, condition)
		if err != nil {
			log.Fatalf("query: %v", err)
		}
	} else {
		p, err = model.JointProbability(target...)
		if err != nil {
			log.Fatalf("query: %v", err)
		}
	}

	fmt.Printf("P(%s) = %.6f\n", *q, p)
}

// parseVariables parses "A=yes,B=no" against the dataset's attributes.
func parseVariables(ds *data.DataSet, s string) ([]query.Variable, error) {
	var vars []query.Variable
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not of the form attribute=value", part)
		}
		attr, found := ds.AttributeByName(strings.TrimSpace(name))
		if !found {
			return nil, fmt.Errorf("unknown attribute %q", name)
		}
		code, found := attr.ValueID(strings.TrimSpace(value))
		if !found {
			return nil, fmt.Errorf("attribute %q has no value %q", attr.Name(), value)
		}
		vars = append(vars, query.Variable{Attribute: attr, Value: code})
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("no variables in %q", s)
	}
	return vars, nil
}
