package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	switch c.Oracle.Provider {
	case "openai":
		if c.Oracle.OpenaiApiKey == "" {
			return errors.New("oracle.openai_api_key is required when oracle.provider is \"openai\"")
		}
	case "gemini":
		if c.Oracle.GoogleApiKey == "" {
			return errors.New("oracle.google_api_key is required when oracle.provider is \"gemini\"")
		}
	default:
		return fmt.Errorf("oracle.provider must be \"openai\" or \"gemini\", got %q", c.Oracle.Provider)
	}

	if c.Oracle.Model == "" {
		return errors.New("oracle.model is required")
	}
	if c.Oracle.MaxRetries < 0 {
		return errors.New("oracle.max_retries must not be negative")
	}
	if c.Oracle.BackoffSeconds < 0 {
		return errors.New("oracle.backoff_seconds must not be negative")
	}

	if c.Partition.CategoryCount <= 0 {
		return errors.New("partition.category_count must be a positive integer")
	}
	if c.Partition.SampleSize <= 0 {
		return errors.New("partition.sample_size must be a positive integer")
	}
	if c.Partition.StepCategoryAmount <= 0 {
		return errors.New("partition.step_category_amount must be a positive integer")
	}
	if c.Partition.BatchSize <= 0 {
		return errors.New("partition.batch_size must be a positive integer")
	}
	if c.Partition.MaxDepth <= 0 {
		return errors.New("partition.max_depth must be a positive integer")
	}

	return nil
}
