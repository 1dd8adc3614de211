package shared

import (
	"testing"

	"github.com/furisto/gistpad/shared/keyring"
	"github.com/furisto/gistpad/shared/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestContextManager(t *testing.T) (*ContextManager, *mocks.MockProvider, *afero.Afero) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userInfo := mocks.NewMockUserInfo(ctrl)
	userInfo.EXPECT().GistpadConfigDir().Return("/home/user/.config/gistpad", nil).AnyTimes()
	provider := mocks.NewMockProvider(ctrl)

	fs := &afero.Afero{Fs: afero.NewMemMapFs()}
	return NewContextManagerWithKeyring(fs, userInfo, provider), provider, fs
}

func TestContextManager_UpsertAndSwitch(t *testing.T) {
	manager, _, fs := newTestContextManager(t)

	existed, err := manager.UpsertContext("github", EndpointKindGitHub, "https://api.github.com", false, nil)
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = manager.UpsertContext("work", EndpointKindEnterprise, "https://github.example.com/api/v3", false, &AuthConfig{
		Type:     AuthTypeToken,
		TokenRef: KeyringRefPrefix + "work",
	})
	require.NoError(t, err)

	contexts, err := manager.LoadContext()
	require.NoError(t, err)
	assert.Equal(t, "github", contexts.CurrentContext, "first context becomes current")
	assert.Equal(t, "work", contexts.Contexts["work"].Auth.KeyringKey())

	switched, err := manager.SetCurrentContext("work")
	require.NoError(t, err)
	assert.Equal(t, "work", switched)
	contexts, err = manager.LoadContext()
	require.NoError(t, err)
	assert.Equal(t, "work", contexts.CurrentContext)
	assert.Equal(t, "github", contexts.PreviousContext)

	switched, err = manager.SetCurrentContext(PreviousContextName)
	require.NoError(t, err)
	assert.Equal(t, "github", switched)

	existed, err = manager.UpsertContext("work", EndpointKindEnterprise, "https://ghe.example.com/api/v3", false, nil)
	require.NoError(t, err)
	assert.True(t, existed)

	work, err := manager.GetContext("work")
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3", work.Address)
	assert.NotNil(t, work.Auth, "auth is kept when not replaced")

	exists, err := fs.Exists("/home/user/.config/gistpad/context.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestContextManager_UpsertRejectsInvalidEndpoint(t *testing.T) {
	manager, _, _ := newTestContextManager(t)

	_, err := manager.UpsertContext("broken", EndpointKindGitHub, "ftp://example.com", false, nil)
	assert.ErrorContains(t, err, "must be an http or https URL")
}

func TestContextManager_DeleteRemovesToken(t *testing.T) {
	manager, provider, _ := newTestContextManager(t)

	_, err := manager.UpsertContext("work", EndpointKindEnterprise, "https://ghe.example.com/api/v3", true, &AuthConfig{
		Type:     AuthTypeToken,
		TokenRef: KeyringRefPrefix + "work",
	})
	require.NoError(t, err)

	provider.EXPECT().Delete("work").Return(&keyring.Error{Op: "delete", Context: "work", Err: keyring.ErrTokenNotFound})
	require.NoError(t, manager.DeleteContext("work"))

	contexts, err := manager.LoadContext()
	require.NoError(t, err)
	assert.Empty(t, contexts.Contexts)
	assert.Empty(t, contexts.CurrentContext)

	assert.ErrorContains(t, manager.DeleteContext("work"), `context "work" not found`)
}

func TestDetectEndpointKind(t *testing.T) {
	assert.Equal(t, EndpointKindGitHub, DetectEndpointKind("https://api.github.com"))
	assert.Equal(t, EndpointKindEnterprise, DetectEndpointKind("https://github.example.com/api/v3"))
}
