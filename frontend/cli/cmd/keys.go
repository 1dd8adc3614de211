package cmd

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/furisto/gistpad/shared"
	"github.com/furisto/gistpad/shared/config"
	"github.com/spf13/afero"
)

type contextKey string

const (
	ContextKeyFileSystem      contextKey = "filesystem"
	ContextKeyOutputRenderer  contextKey = "output_renderer"
	ContextKeyUserInfo        contextKey = "user_info"
	ContextKeyDisableFileLogs contextKey = "disable_file_logs"
	ContextKeyGistStore       contextKey = "gist_store"
	ContextKeyEndpointContext contextKey = "endpoint_context"
	ContextKeyConfigStore     contextKey = "config_store"
	ContextKeyGlobalOptions   contextKey = "global_options"
	ContextKeyUI              contextKey = "ui"
	ContextKeyKeyringProvider contextKey = "keyring_provider"
	ContextKeyTerminal        contextKey = "terminal"
)

func getFileSystem(ctx context.Context) *afero.Afero {
	if fs, ok := ctx.Value(ContextKeyFileSystem).(*afero.Afero); ok && fs != nil {
		return fs
	}
	return &afero.Afero{Fs: afero.NewOsFs()}
}

func getUserInfo(ctx context.Context) shared.UserInfo {
	if userInfo, ok := ctx.Value(ContextKeyUserInfo).(shared.UserInfo); ok && userInfo != nil {
		return userInfo
	}
	return shared.NewDefaultUserInfo(getFileSystem(ctx))
}

func getRenderer(ctx context.Context) OutputRenderer {
	if renderer, ok := ctx.Value(ContextKeyOutputRenderer).(OutputRenderer); ok && renderer != nil {
		return renderer
	}
	return &DefaultRenderer{}
}

func getGistStore(ctx context.Context) gist.Store {
	if store, ok := ctx.Value(ContextKeyGistStore).(gist.Store); ok {
		return store
	}
	return nil
}

func setGistStore(ctx context.Context, store gist.Store) context.Context {
	return context.WithValue(ctx, ContextKeyGistStore, store)
}

func getConfigStore(ctx context.Context) *config.Store {
	if store, ok := ctx.Value(ContextKeyConfigStore).(*config.Store); ok {
		return store
	}
	return nil
}

func setConfigStore(ctx context.Context, store *config.Store) context.Context {
	return context.WithValue(ctx, ContextKeyConfigStore, store)
}

func setGlobalOptions(ctx context.Context, options *globalOptions) context.Context {
	return context.WithValue(ctx, ContextKeyGlobalOptions, options)
}

func getGlobalOptions(ctx context.Context) *globalOptions {
	if options, ok := ctx.Value(ContextKeyGlobalOptions).(*globalOptions); ok && options != nil {
		return options
	}
	return &globalOptions{}
}

// getUI returns an injected UI, used by tests of the interactive paths.
func getUI(ctx context.Context) pad.UI {
	if ui, ok := ctx.Value(ContextKeyUI).(pad.UI); ok {
		return ui
	}
	return nil
}

// TerminalOpener opens the controlling terminal, used for prompts while
// stdin carries content.
type TerminalOpener func() (io.ReadCloser, error)

func openControllingTerminal() (io.ReadCloser, error) {
	if runtime.GOOS == "windows" {
		return os.Open("CONIN$")
	}
	return os.Open("/dev/tty")
}

func getTerminalOpener(ctx context.Context) TerminalOpener {
	if opener, ok := ctx.Value(ContextKeyTerminal).(TerminalOpener); ok && opener != nil {
		return opener
	}
	return openControllingTerminal
}
