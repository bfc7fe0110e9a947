// bn-learn ingests a CSV dataset, learns a Bayesian network structure
// by hill climbing, and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/bayesnet/pkg/bayesnet"
	"github.com/cognicore/bayesnet/pkg/bayesnet/config"
	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/store"
	"github.com/cognicore/bayesnet/pkg/bayesnet/store/sqlite"
)

func main() {
	var (
		input   = flag.String("input", "", "Path to CSV dataset (required unless --dataset)")
		db      = flag.String("db", "", "Optional: SQLite database for dataset persistence")
		dataset = flag.String("dataset", "", "Dataset name in the database (load if no --input, save otherwise)")
		cfgPath = flag.String("config", "", "Optional: learn configuration YAML")
	)
	flag.Parse()

	if *input == "" && (*db == "" || *dataset == "") {
		log.Fatal("--input or both --db and --dataset required")
	}

	ctx := context.Background()

	cfg := config.DefaultLearn()
	if *cfgPath != "" {
		loaded, err := config.LoadLearn(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	var st store.Store
	if *db != "" {
		opened, err := sqlite.Open(ctx, *db)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer opened.Close()
		st = opened
	}

	var ds *data.DataSet
	switch {
	case *input != "":
		loaded, err := data.LoadCSV(*input)
		if err != nil {
			log.Fatalf("load dataset: %v", err)
		}
		ds = loaded
		if st != nil && *dataset != "" {
			if err := st.SaveDataSet(ctx, *dataset, ds); err != nil {
				log.Fatalf("save dataset: %v", err)
			}
		}
	default:
		loaded, found, err := st.LoadDataSet(ctx, *dataset)
		if err != nil {
			log.Fatalf("load dataset: %v", err)
		}
		if !found {
			log.Fatalf("dataset %q not found in %s", *dataset, *db)
		}
		ds = loaded
	}

	engine, err := bayesnet.FromConfig(cfg, st)
	if err != nil {
		log.Fatalf("configure engine: %v", err)
	}

	model, err := engine.LearnFrom(ds)
	if err != nil {
		log.Fatalf("learn: %v", err)
	}

	res := model.Result
	fmt.Printf("run %s: %d instances, %d nodes, %d edges\n",
		res.RunID, ds.NumInstances(), model.Network.NumNodes(), model.Network.NumEdges())
	fmt.Printf("converged after %d iterations (%d operations examined), %s score %.4f\n",
		res.Stats.Iterations, res.Stats.OperationsExamined, cfg.Scorer, res.FinalScore)
	fmt.Println()
	fmt.Print(model.Network)
}
