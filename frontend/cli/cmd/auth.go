package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/shared"
	"github.com/furisto/gistpad/shared/keyring"
)

// tokenEnvVars are consulted in order for github.com contexts without auth.
var tokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

func buildClientOptions(endpoint shared.EndpointContext, contextManager *shared.ContextManager) ([]gist.ClientOption, error) {
	options := []gist.ClientOption{gist.WithUserAgent("gistpad/" + Version)}

	token, err := endpointToken(endpoint, contextManager)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve auth token: %w", err)
	}
	if token != "" {
		options = append(options, gist.WithToken(token))
	}
	return options, nil
}

// endpointToken returns the token for endpoint, or "" for anonymous access.
func endpointToken(endpoint shared.EndpointContext, contextManager *shared.ContextManager) (string, error) {
	auth := endpoint.Auth
	switch {
	case auth.IsConfigured() && auth.Token != "":
		return auth.Token, nil
	case auth.IsConfigured():
		return keyringToken(auth, contextManager)
	case endpoint.Kind == shared.EndpointKindGitHub:
		return environmentToken(), nil
	}
	return "", nil
}

func keyringToken(auth *shared.AuthConfig, contextManager *shared.ContextManager) (string, error) {
	key := auth.KeyringKey()
	if key == "" {
		return "", fmt.Errorf("invalid token reference %q: must start with %s", auth.TokenRef, shared.KeyringRefPrefix)
	}

	token, err := contextManager.RetrieveToken(key)
	if errors.Is(err, keyring.ErrTokenNotFound) {
		return "", fmt.Errorf("no token stored for context %q, run 'gistpad context add %s --auth-token' again", key, key)
	}
	return token, err
}

func environmentToken() string {
	for _, name := range tokenEnvVars {
		if token := strings.TrimSpace(os.Getenv(name)); token != "" {
			return token
		}
	}
	return ""
}
