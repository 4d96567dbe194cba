package classifier

import (
	"time"

	"triage/internal/domain/analysis"
	"triage/internal/shared/config"
	"triage/internal/shared/logger"
)

// NewFromConfig builds the classifier selected by configuration. The
// anthropic provider requires an API key; without one the keyword
// heuristic is used so the service stays functional.
func NewFromConfig(cfg *config.ClassifierConfig, log logger.Interface) analysis.Classifier {
	if cfg.Provider == "anthropic" && cfg.APIKey != "" {
		log.Infow("using anthropic classifier", "model", cfg.Model)
		return NewAnthropicClassifier(
			cfg.APIKey,
			cfg.Model,
			cfg.Temperature,
			time.Duration(cfg.TimeoutSeconds)*time.Second,
			log,
		)
	}
	if cfg.Provider == "anthropic" {
		log.Warnw("anthropic classifier selected but no API key configured, using keyword classifier")
	} else {
		log.Infow("using keyword classifier")
	}
	return NewKeywordClassifier()
}
