package openai

import (
	"testing"
)

func TestNewOpenAIProvider(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
			t.Error("Expected error when no API key is available")
		}
	})

	t.Run("ExplicitAPIKey", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key"})
		if err != nil {
			t.Fatalf("NewOpenAIProvider failed: %v", err)
		}
		if p.model != DefaultOpenAIModel {
			t.Errorf("Expected default model %s, got %s", DefaultOpenAIModel, p.model)
		}
	})

	t.Run("APIKeyFromEnv", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "env-key")
		if _, err := NewOpenAIProvider(OpenAIConfig{}); err != nil {
			t.Errorf("Expected env fallback to succeed, got %v", err)
		}
	})

	t.Run("CustomModel", func(t *testing.T) {
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "text-embedding-3-large"})
		if err != nil {
			t.Fatalf("NewOpenAIProvider failed: %v", err)
		}
		if p.model != "text-embedding-3-large" {
			t.Errorf("Expected custom model, got %s", p.model)
		}
	})
}

func TestFitIsNoOp(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}
	if err := p.Fit([]string{"any", "corpus"}); err != nil {
		t.Errorf("Fit must be a no-op, got %v", err)
	}
}
