package main

import (
	"flag"
	"math/rand"
	"os"

	"leadscore_backend/internal/training"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
)

func main() {
	rows := flag.Int("rows", 10000, "number of synthetic leads to generate")
	out := flag.String("out", "data/leads_dataset.csv", "output CSV path")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("generating synthetic leads dataset", "rows", *rows, "out", *out)

	rng := rand.New(rand.NewSource(*seed))
	dataset := training.Generate(*rows, rng)

	f, err := os.Create(*out)
	if err != nil {
		log.Error("failed to create output file", "error", err)
		panic("failed to create output file: " + err.Error())
	}
	defer f.Close()

	if err := training.WriteCSV(f, dataset); err != nil {
		log.Error("failed to write dataset", "error", err)
		panic("failed to write dataset: " + err.Error())
	}

	log.Info("dataset written", "rows", len(dataset), "path", *out)
}
