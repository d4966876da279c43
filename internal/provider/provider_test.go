package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/config"
)

func TestNewSelectsProvider(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
	}{
		{provider: "openai", wantName: "openai"},
		{provider: "anthropic", wantName: "anthropic"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			gen, err := New(config.AIConfig{Provider: tt.provider, APIKey: "test-key"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, gen.Name())
		})
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(config.AIConfig{Provider: "gemini-classic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported ai provider")
}
