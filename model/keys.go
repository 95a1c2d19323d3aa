package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/pixl-sh/pixl-nodes/logging"
)

// ErrNoAPIKey is returned when neither the environment nor the node input
// provides a provider API key.
var ErrNoAPIKey = fmt.Errorf("no API key provided")

// ResolveAPIKey returns the provider API key giving the environment variable
// priority over the node input. Keys from node inputs are accepted with a
// warning, since they end up saved inside workflow files.
func ResolveAPIKey(logger logging.Logger, envVar, input, provider string) (string, error) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
		logger.Debug("model.api_key.from_env", "env_var", envVar, "provider", provider)
		return key, nil
	}

	if key := strings.TrimSpace(input); key != "" {
		logger.Warn("model.api_key.from_input",
			"provider", provider,
			"env_var", envVar,
			"hint", "set the environment variable instead; keys in node inputs are saved in workflow files",
		)
		return key, nil
	}

	return "", fmt.Errorf(
		"%w for %s. Either set %s (recommended) or enter a key in the node's api_key field",
		ErrNoAPIKey, provider, envVar,
	)
}
