package shared

import (
	"fmt"
	"net/url"
	"strings"
)

type AuthType string

const (
	AuthTypeToken AuthType = "token"

	KeyringRefPrefix = "keyring://gistpad/"
)

type AuthConfig struct {
	Type     AuthType `yaml:"type"`
	Token    string   `yaml:"token,omitempty"`
	TokenRef string   `yaml:"tokenRef,omitempty"`
}

func (a *AuthConfig) IsConfigured() bool {
	return a != nil && (a.Token != "" || a.TokenRef != "")
}

// KeyringKey returns the keyring entry a token reference points at.
func (a *AuthConfig) KeyringKey() string {
	if a == nil || !strings.HasPrefix(a.TokenRef, KeyringRefPrefix) {
		return ""
	}
	return strings.TrimPrefix(a.TokenRef, KeyringRefPrefix)
}

// EndpointContext is a gist API endpoint, github.com or an enterprise
// server, with the credentials used against it.
type EndpointContext struct {
	Address string      `yaml:"address"`
	Kind    string      `yaml:"kind"`
	Auth    *AuthConfig `yaml:"auth,omitempty"`
}

const (
	EndpointKindGitHub     = "github"
	EndpointKindEnterprise = "enterprise"
)

// DetectEndpointKind classifies an API address.
func DetectEndpointKind(address string) string {
	parsed, err := url.Parse(address)
	if err == nil && parsed.Host == "api.github.com" {
		return EndpointKindGitHub
	}
	return EndpointKindEnterprise
}

func (e EndpointContext) Validate() error {
	if e.Address == "" {
		return fmt.Errorf("endpoint address cannot be empty")
	}

	parsed, err := url.Parse(e.Address)
	if err != nil {
		return fmt.Errorf("invalid endpoint address %q: %w", e.Address, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid endpoint address %q: must be an http or https URL", e.Address)
	}

	switch e.Kind {
	case EndpointKindGitHub, EndpointKindEnterprise:
	default:
		return fmt.Errorf("invalid endpoint kind %q: must be %q or %q", e.Kind, EndpointKindGitHub, EndpointKindEnterprise)
	}

	if e.Auth != nil && e.Auth.Type != AuthTypeToken {
		return fmt.Errorf("unsupported auth type %q", e.Auth.Type)
	}

	return nil
}

type EndpointContexts struct {
	CurrentContext  string                     `yaml:"currentContext"`
	PreviousContext string                     `yaml:"previousContext,omitempty"`
	Contexts        map[string]EndpointContext `yaml:"contexts"`
}

func (c *EndpointContexts) Validate() error {
	if c.CurrentContext != "" {
		if _, ok := c.Contexts[c.CurrentContext]; !ok {
			return fmt.Errorf("current context %q not found", c.CurrentContext)
		}
	}

	for name, ctx := range c.Contexts {
		if err := ctx.Validate(); err != nil {
			return fmt.Errorf("context %q: %w", name, err)
		}
	}
	return nil
}

// PreviousContextName selects the context that was current before the
// last switch.
const PreviousContextName = "-"

// Switch makes name current and remembers the context it replaces.
func (c *EndpointContexts) Switch(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}
	if c.CurrentContext != name {
		c.PreviousContext = c.CurrentContext
	}
	c.CurrentContext = name
	return nil
}
