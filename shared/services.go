package shared

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/furisto/gistpad/shared/keyring"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const contextFileName = "context.yaml"

// ContextManager reads and writes context.yaml and keeps the tokens the
// contexts refer to in the keyring.
type ContextManager struct {
	fs              *afero.Afero
	userInfo        UserInfo
	keyringProvider keyring.Provider
}

func NewContextManager(fs *afero.Afero, userInfo UserInfo) *ContextManager {
	return NewContextManagerWithKeyring(fs, userInfo, keyring.NewKeyringProvider())
}

func NewContextManagerWithKeyring(fs *afero.Afero, userInfo UserInfo, keyringProvider keyring.Provider) *ContextManager {
	return &ContextManager{
		fs:              fs,
		userInfo:        userInfo,
		keyringProvider: keyringProvider,
	}
}

func (m *ContextManager) path() (string, error) {
	configDir, err := m.userInfo.GistpadConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, contextFileName), nil
}

// LoadContext returns the stored contexts. A missing file is an empty set.
func (m *ContextManager) LoadContext() (*EndpointContexts, error) {
	path, err := m.path()
	if err != nil {
		return nil, err
	}

	contexts := &EndpointContexts{}
	content, err := m.fs.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(content, contexts); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if contexts.Contexts == nil {
		contexts.Contexts = make(map[string]EndpointContext)
	}
	return contexts, nil
}

// update loads the contexts, applies fn and writes the result back unless
// fn fails.
func (m *ContextManager) update(fn func(contexts *EndpointContexts) error) error {
	contexts, err := m.LoadContext()
	if err != nil {
		return err
	}
	if err := fn(contexts); err != nil {
		return err
	}

	path, err := m.path()
	if err != nil {
		return err
	}
	content, err := yaml.Marshal(contexts)
	if err != nil {
		return err
	}
	if err := m.fs.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return m.fs.WriteFile(path, content, 0600)
}

func (m *ContextManager) GetContext(name string) (*EndpointContext, error) {
	contexts, err := m.LoadContext()
	if err != nil {
		return nil, err
	}

	endpoint, ok := contexts.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("context %q not found", name)
	}
	return &endpoint, nil
}

// UpsertContext creates or replaces a context and reports whether it
// existed. A nil auth keeps the credentials of the existing context. The
// first context added becomes current.
func (m *ContextManager) UpsertContext(name string, kind string, address string, setCurrent bool, auth *AuthConfig) (bool, error) {
	endpoint := EndpointContext{Address: address, Kind: kind, Auth: auth}
	if err := endpoint.Validate(); err != nil {
		return false, err
	}

	var existed bool
	err := m.update(func(contexts *EndpointContexts) error {
		var existing EndpointContext
		existing, existed = contexts.Contexts[name]
		if existed && auth == nil {
			endpoint.Auth = existing.Auth
		}
		contexts.Contexts[name] = endpoint

		if setCurrent || contexts.CurrentContext == "" {
			return contexts.Switch(name)
		}
		return nil
	})
	return existed, err
}

// DeleteContext removes a context and its keyring token. Current and
// previous pointers to it are cleared.
func (m *ContextManager) DeleteContext(name string) error {
	return m.update(func(contexts *EndpointContexts) error {
		endpoint, ok := contexts.Contexts[name]
		if !ok {
			return fmt.Errorf("context %q not found", name)
		}

		if key := endpoint.Auth.KeyringKey(); key != "" {
			if err := m.keyringProvider.Delete(key); err != nil && !errors.Is(err, keyring.ErrTokenNotFound) {
				return fmt.Errorf("failed to delete token from keyring: %w", err)
			}
		}

		delete(contexts.Contexts, name)
		if contexts.CurrentContext == name {
			contexts.CurrentContext = ""
		}
		if contexts.PreviousContext == name {
			contexts.PreviousContext = ""
		}
		return nil
	})
}

// SetCurrentContext switches to name, or back to the previous context when
// name is "-". It returns the name of the context switched to.
func (m *ContextManager) SetCurrentContext(name string) (string, error) {
	err := m.update(func(contexts *EndpointContexts) error {
		if name == PreviousContextName {
			if contexts.PreviousContext == "" {
				return errors.New("no previous context found")
			}
			name = contexts.PreviousContext
		}
		return contexts.Switch(name)
	})
	return name, err
}

func (m *ContextManager) StoreToken(contextName string, token string) error {
	return m.keyringProvider.Set(contextName, token)
}

func (m *ContextManager) RetrieveToken(contextName string) (string, error) {
	return m.keyringProvider.Get(contextName)
}

//go:generate mockgen -destination=mocks/user_info_mock.go -package=mocks . UserInfo
type UserInfo interface {
	HomeDir() (string, error)
	GistpadConfigDir() (string, error)
	GistpadLogDir() (string, error)
	Cwd() (string, error)
}

// DefaultUserInfo resolves directories of the current user following the
// XDG base directory layout, with macOS logs under ~/Library/Logs.
type DefaultUserInfo struct {
	fs *afero.Afero
}

func NewDefaultUserInfo(fs *afero.Afero) *DefaultUserInfo {
	return &DefaultUserInfo{fs: fs}
}

func (u *DefaultUserInfo) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (u *DefaultUserInfo) GistpadConfigDir() (string, error) {
	return u.ensureDir(filepath.Join(xdg.ConfigHome, "gistpad"))
}

func (u *DefaultUserInfo) GistpadLogDir() (string, error) {
	if runtime.GOOS != "darwin" {
		return u.ensureDir(filepath.Join(xdg.StateHome, "gistpad"))
	}

	homeDir, err := u.HomeDir()
	if err != nil {
		return "", err
	}
	return u.ensureDir(filepath.Join(homeDir, "Library", "Logs", "gistpad"))
}

func (u *DefaultUserInfo) Cwd() (string, error) {
	return os.Getwd()
}

func (u *DefaultUserInfo) ensureDir(dir string) (string, error) {
	if err := u.fs.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

var _ UserInfo = (*DefaultUserInfo)(nil)
