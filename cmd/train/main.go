package main

import (
	"flag"

	"leadscore_backend/internal/training"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
)

func main() {
	data := flag.String("data", "data/leads_dataset.csv", "training dataset CSV path")
	out := flag.String("out", "model/lead_scoring_model.json", "output model artifact path")
	epochs := flag.Int("epochs", 0, "gradient descent epochs (0 = default)")
	learningRate := flag.Float64("lr", 0, "gradient descent learning rate (0 = default)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("training lead scoring model", "data", *data, "out", *out)

	samples, err := training.LoadCSV(*data)
	if err != nil {
		log.Error("failed to load dataset", "error", err)
		panic("failed to load dataset: " + err.Error())
	}
	log.Info("dataset loaded", "samples", len(samples))

	opts := training.DefaultFitOptions()
	if *epochs > 0 {
		opts.Epochs = *epochs
	}
	if *learningRate > 0 {
		opts.LearningRate = *learningRate
	}

	model, err := training.Fit(samples, opts)
	if err != nil {
		log.Error("training failed", "error", err)
		panic("training failed: " + err.Error())
	}

	metrics, err := training.Evaluate(model, samples)
	if err != nil {
		log.Error("evaluation failed", "error", err)
		panic("evaluation failed: " + err.Error())
	}
	log.Info("model trained", "accuracy", metrics.Accuracy, "roc_auc", metrics.ROCAUC)

	if err := model.Save(*out); err != nil {
		log.Error("failed to save model artifact", "error", err)
		panic("failed to save model artifact: " + err.Error())
	}
	log.Info("model artifact written", "path", *out)
}
