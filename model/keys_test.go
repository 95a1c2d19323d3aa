package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAPIKey_EnvWins(t *testing.T) {
	t.Setenv("PIXL_TEST_API_KEY", "env-key")

	key, err := ResolveAPIKey(nil, "PIXL_TEST_API_KEY", "input-key", "TestProvider")
	assert.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestResolveAPIKey_InputFallback(t *testing.T) {
	t.Setenv("PIXL_TEST_API_KEY", "")

	key, err := ResolveAPIKey(nil, "PIXL_TEST_API_KEY", "  input-key  ", "TestProvider")
	assert.NoError(t, err)
	assert.Equal(t, "input-key", key)
}

func TestResolveAPIKey_Missing(t *testing.T) {
	t.Setenv("PIXL_TEST_API_KEY", "   ")

	_, err := ResolveAPIKey(nil, "PIXL_TEST_API_KEY", "", "TestProvider")
	assert.True(t, errors.Is(err, ErrNoAPIKey))
	assert.Contains(t, err.Error(), "PIXL_TEST_API_KEY")
}

func TestMockGenerator(t *testing.T) {
	m := NewMockGenerator("test-model", "mock")
	m.AddResponse("hello", "world")

	resp, err := m.Generate(context.Background(), Request{Prompt: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, "world", resp.Text)

	resp, err = m.Generate(context.Background(), Request{Prompt: "other"})
	assert.NoError(t, err)
	assert.Contains(t, resp.Text, "Mock response to")

	assert.Equal(t, "mock", m.Info().Provider)
}
