//go:build integration

package openai

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_Generate_RealAPI(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY not set, skipping integration test")
	}

	client := NewClient(apiKey)
	ctx := context.Background()

	response, err := client.Generate(ctx,
		"You are a concise assistant. Answer in one sentence.",
		"What is a community resource directory?")

	require.NoError(t, err)
	assert.NotEmpty(t, response)
}
