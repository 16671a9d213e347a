package providers

import (
	"github.com/programrank/programrank/providers/openai"
	"github.com/programrank/programrank/providers/tfidf"
	"github.com/programrank/programrank/types"
	"github.com/programrank/programrank/vectorizer"
)

// NewTFIDFProvider creates the default local TF-IDF provider
func NewTFIDFProvider(cfg vectorizer.Config) (types.VectorProvider, error) {
	return tfidf.NewProvider(cfg)
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config openai.OpenAIConfig) (types.VectorProvider, error) {
	return openai.NewOpenAIProvider(config)
}
