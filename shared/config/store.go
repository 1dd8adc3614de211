package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/furisto/gistpad/shared"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

var DefaultIgnorePatterns = []string{
	".git",
	".git/**",
	"node_modules",
	"node_modules/**",
	"**/.DS_Store",
}

type Config struct {
	LanguageMappings map[string][]string `yaml:"languageMappings,omitempty"`
	Explorer         ExplorerConfig      `yaml:"explorer,omitempty"`
}

type ExplorerConfig struct {
	Ignore []string `yaml:"ignore,omitempty"`
}

// Store reads and writes config.yaml in the gistpad config directory.
type Store struct {
	fs     *afero.Afero
	path   string
	config Config
}

func NewStore(fs *afero.Afero, userInfo shared.UserInfo) (*Store, error) {
	configDir, err := userInfo.GistpadConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}

	store := &Store{
		fs:   fs,
		path: filepath.Join(configDir, fileName),
	}

	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) load() error {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	content, err := s.fs.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	for _, pattern := range config.Explorer.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern %q in %s", pattern, s.path)
		}
	}

	s.config = config
	return nil
}

func (s *Store) Path() string {
	return s.path
}

// LanguageMappings returns a copy of the configured language to extension
// mapping. A language without an entry is not restricted.
func (s *Store) LanguageMappings() map[string][]string {
	mappings := make(map[string][]string, len(s.config.LanguageMappings))
	for language, extensions := range s.config.LanguageMappings {
		mappings[language] = slices.Clone(extensions)
	}
	return mappings
}

// Languages returns the mapped language ids in sorted order.
func (s *Store) Languages() []string {
	languages := make([]string, 0, len(s.config.LanguageMappings))
	for language := range s.config.LanguageMappings {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}

func (s *Store) IgnorePatterns() []string {
	if len(s.config.Explorer.Ignore) == 0 {
		return slices.Clone(DefaultIgnorePatterns)
	}
	return slices.Clone(s.config.Explorer.Ignore)
}

// SetMapping replaces the extensions of a language.
func (s *Store) SetMapping(language string, extensions []string) error {
	normalized, err := normalizeExtensions(extensions)
	if err != nil {
		return err
	}

	if s.config.LanguageMappings == nil {
		s.config.LanguageMappings = make(map[string][]string)
	}
	s.config.LanguageMappings[language] = normalized
	return s.save()
}

// AddMapping appends extensions to a language, skipping ones already present.
func (s *Store) AddMapping(language string, extensions []string) error {
	normalized, err := normalizeExtensions(extensions)
	if err != nil {
		return err
	}

	if s.config.LanguageMappings == nil {
		s.config.LanguageMappings = make(map[string][]string)
	}

	existing := s.config.LanguageMappings[language]
	for _, extension := range normalized {
		if !slices.Contains(existing, extension) {
			existing = append(existing, extension)
		}
	}
	s.config.LanguageMappings[language] = existing
	return s.save()
}

func (s *Store) RemoveMapping(language string) error {
	if _, ok := s.config.LanguageMappings[language]; !ok {
		return fmt.Errorf("no mapping for language %q", language)
	}

	delete(s.config.LanguageMappings, language)
	return s.save()
}

func (s *Store) save() error {
	content, err := yaml.Marshal(&s.config)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return s.fs.WriteFile(s.path, content, 0600)
}

func normalizeExtensions(extensions []string) ([]string, error) {
	normalized := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		extension = strings.TrimSpace(extension)
		if extension == "" || extension == "." {
			return nil, fmt.Errorf("invalid extension %q", extension)
		}
		if strings.ContainsAny(extension, "/\\ ") {
			return nil, fmt.Errorf("invalid extension %q: must not contain separators or spaces", extension)
		}
		if !strings.HasPrefix(extension, ".") {
			extension = "." + extension
		}
		if !slices.Contains(normalized, extension) {
			normalized = append(normalized, extension)
		}
	}
	return normalized, nil
}
