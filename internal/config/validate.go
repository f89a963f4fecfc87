package config

import (
	"fmt"

	"golang.org/x/text/language"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Collection.validate(); err != nil {
		return fmt.Errorf("collection: %w", err)
	}

	if c.RateLimit.AnswersPerMinute <= 0 {
		return fmt.Errorf("rate_limit.answers_per_minute must be > 0 (got %d)", c.RateLimit.AnswersPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	if err := c.I18n.validate(); err != nil {
		return fmt.Errorf("i18n: %w", err)
	}

	return nil
}

func (c *CollectionConfig) validate() error {
	if c.MaxAnswersPerSubmission <= 0 {
		return fmt.Errorf("max_answers_per_submission must be > 0 (got %d)", c.MaxAnswersPerSubmission)
	}
	if c.MaxAnswerBytes <= 0 {
		return fmt.Errorf("max_answer_bytes must be > 0 (got %d)", c.MaxAnswerBytes)
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", c.MaxPageSize)
	}
	if c.DefaultPageSize <= 0 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", c.MaxPageSize, c.DefaultPageSize)
	}
	return nil
}

func (c *I18nConfig) validate() error {
	for _, code := range c.Languages() {
		if _, err := language.ParseBase(code); err != nil {
			return fmt.Errorf("languages: unknown language %q", code)
		}
	}
	return nil
}
