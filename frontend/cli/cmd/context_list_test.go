package cmd

import (
	"testing"

	"github.com/furisto/gistpad/shared"
	"github.com/spf13/afero"
)

func TestContextList(t *testing.T) {
	setup := &TestSetup{}

	setup.RunTests(t, []TestScenario{
		{
			Name:    "success - list multiple contexts with current marker",
			Command: []string{"context", "list"},
			SetupEnv: map[string]string{"GITHUB_TOKEN": "", "GH_TOKEN": "", "GISTPAD_CONTEXT": ""},
			SetupFileSystem: func(fs *afero.Afero) {
				setupContextFile(t, fs, &shared.EndpointContexts{
					CurrentContext: "github",
					Contexts: map[string]shared.EndpointContext{
						"github": {
							Address: "https://api.github.com",
							Kind:    shared.EndpointKindGitHub,
						},
						"dev": {
							Address: "https://ghe.dev.internal/api/v3",
							Kind:    shared.EndpointKindEnterprise,
							Auth: &shared.AuthConfig{
								Type:     shared.AuthTypeToken,
								TokenRef: shared.KeyringRefPrefix + "dev",
							},
						},
						"staging": {
							Address: "https://ghe.staging.example.com/api/v3",
							Kind:    shared.EndpointKindEnterprise,
							Auth: &shared.AuthConfig{
								Type:  shared.AuthTypeToken,
								Token: "inline-token-123",
							},
						},
					},
				})
			},
			Expected: TestExpectation{
				DisplayedObjects: []*ContextDisplay{
					{
						Name:     "dev",
						Endpoint: "https://ghe.dev.internal/api/v3",
						Kind:     shared.EndpointKindEnterprise,
						Auth:     "keyring://gistpad/dev",
						Current:  false,
					},
					{
						Name:     "github",
						Endpoint: "https://api.github.com",
						Kind:     shared.EndpointKindGitHub,
						Auth:     "none",
						Current:  true,
					},
					{
						Name:     "staging",
						Endpoint: "https://ghe.staging.example.com/api/v3",
						Kind:     shared.EndpointKindEnterprise,
						Auth:     "token (inline)",
						Current:  false,
					},
				},
			},
		},
		{
			Name:    "success - list with JSON output",
			Command: []string{"context", "list", "--output", "json"},
			SetupEnv: map[string]string{"GITHUB_TOKEN": "ghp_env", "GH_TOKEN": "", "GISTPAD_CONTEXT": ""},
			SetupFileSystem: func(fs *afero.Afero) {
				setupContextFile(t, fs, &shared.EndpointContexts{
					CurrentContext: "github",
					Contexts: map[string]shared.EndpointContext{
						"github": {
							Address: "https://api.github.com",
							Kind:    shared.EndpointKindGitHub,
						},
					},
				})
			},
			Expected: TestExpectation{
				DisplayFormat: OutputFormatJSON,
				DisplayedObjects: []*ContextDisplay{
					{
						Name:     "github",
						Endpoint: "https://api.github.com",
						Kind:     shared.EndpointKindGitHub,
						Auth:     "env",
						Current:  true,
					},
				},
			},
		},
		{
			Name:    "success - context flag overrides current marker",
			Command: []string{"context", "list", "--context", "work"},
			SetupEnv: map[string]string{"GITHUB_TOKEN": "", "GH_TOKEN": "", "GISTPAD_CONTEXT": ""},
			SetupFileSystem: func(fs *afero.Afero) {
				setupContextFile(t, fs, &shared.EndpointContexts{
					CurrentContext: "github",
					Contexts: map[string]shared.EndpointContext{
						"github": {
							Address: "https://api.github.com",
							Kind:    shared.EndpointKindGitHub,
						},
						"work": {
							Address: "https://github.example.com/api/v3",
							Kind:    shared.EndpointKindEnterprise,
						},
					},
				})
			},
			Expected: TestExpectation{
				DisplayedObjects: []*ContextDisplay{
					{
						Name:     "github",
						Endpoint: "https://api.github.com",
						Kind:     shared.EndpointKindGitHub,
						Auth:     "none",
					},
					{
						Name:     "work",
						Endpoint: "https://github.example.com/api/v3",
						Kind:     shared.EndpointKindEnterprise,
						Auth:     "none",
						Current:  true,
					},
				},
			},
		},
		{
			Name:    "success - default endpoint without contexts",
			Command: []string{"context", "list"},
			SetupEnv: map[string]string{"GITHUB_TOKEN": "", "GH_TOKEN": "", "GISTPAD_CONTEXT": ""},
			SetupFileSystem: func(fs *afero.Afero) {
				setupContextFile(t, fs, &shared.EndpointContexts{
					Contexts: map[string]shared.EndpointContext{},
				})
			},
			Expected: TestExpectation{
				DisplayedObjects: []*ContextDisplay{
					{
						Name:     "(default)",
						Endpoint: "https://api.github.com",
						Kind:     shared.EndpointKindGitHub,
						Auth:     "none",
						Current:  true,
					},
				},
			},
		},
	})
}
