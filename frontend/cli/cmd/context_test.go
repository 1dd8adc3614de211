package cmd

import (
	"testing"

	"github.com/furisto/gistpad/shared"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

func setupContextFile(t *testing.T, fs *afero.Afero, contexts *shared.EndpointContexts) {
	t.Helper()

	content, err := yaml.Marshal(contexts)
	if err != nil {
		t.Fatalf("failed to marshal contexts: %v", err)
	}

	fs.MkdirAll(testConfigDir, 0700)
	err = fs.WriteFile(testConfigDir+"/context.yaml", content, 0600)
	if err != nil {
		t.Fatalf("failed to write context file: %v", err)
	}
}

func setupConfigFile(t *testing.T, fs *afero.Afero, content string) {
	t.Helper()

	fs.MkdirAll(testConfigDir, 0700)
	if err := fs.WriteFile(testConfigDir+"/config.yaml", []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func stringPtr(s string) *string {
	return &s
}
