package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	gistmocks "github.com/furisto/gistpad/backend/gist/mocks"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/furisto/gistpad/shared/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"go.uber.org/mock/gomock"
)

const (
	testHomeDir   = "/home/user"
	testConfigDir = "/home/user/.config/gistpad"
	testCwd       = "/home/user/project"
)

type MockRenderer struct {
	DisplayedObjects any
	DisplayFormat    OutputFormat
}

func (m *MockRenderer) Render(out io.Writer, resources any, options *RenderOptions) error {
	m.DisplayedObjects = resources
	m.DisplayFormat = options.Format
	return nil
}

type TestSetup struct {
	CmpOptions []cmp.Option
}

type TestScenario struct {
	Name            string
	Command         []string
	Stdin           string
	SetupMocks      func(store *gistmocks.MockStore)
	SetupKeyring    func(provider *mocks.MockProvider)
	SetupFileSystem func(fs *afero.Afero)
	SetupEnv        map[string]string
	SetupUserInfo   func(userInfo *mocks.MockUserInfo)
	UI              pad.UI
	Terminal        *string
	Expected        TestExpectation
	ExpectedFiles   map[string]string
}

type TestExpectation struct {
	Stdout           *string
	Stderr           *string
	Error            string
	DisplayedObjects any
	DisplayFormat    OutputFormat
}

func (s *TestSetup) RunTests(t *testing.T, scenarios []TestScenario) {
	if len(scenarios) == 0 {
		t.Fatalf("no scenarios provided")
	}

	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := gistmocks.NewMockStore(ctrl)
			if scenario.SetupMocks != nil {
				scenario.SetupMocks(store)
			}

			keyringProvider := mocks.NewMockProvider(ctrl)
			if scenario.SetupKeyring != nil {
				scenario.SetupKeyring(keyringProvider)
			}

			userInfo := mocks.NewMockUserInfo(ctrl)
			if scenario.SetupUserInfo != nil {
				scenario.SetupUserInfo(userInfo)
			}
			setupDefaultUserInfo(userInfo)

			fs := &afero.Afero{Fs: afero.NewMemMapFs()}
			if scenario.SetupFileSystem != nil {
				scenario.SetupFileSystem(fs)
			}

			for key, value := range scenario.SetupEnv {
				t.Setenv(key, value)
			}

			testCmd := NewRootCmd()

			stdin := bytes.NewBufferString(scenario.Stdin)
			testCmd.SetIn(stdin)

			var stdout, stderr bytes.Buffer
			testCmd.SetOut(&stdout)
			testCmd.SetErr(&stderr)

			mockRenderer := &MockRenderer{}
			ctx := context.Background()
			ctx = context.WithValue(ctx, ContextKeyGistStore, store)
			ctx = context.WithValue(ctx, ContextKeyFileSystem, fs)
			ctx = context.WithValue(ctx, ContextKeyOutputRenderer, mockRenderer)
			ctx = context.WithValue(ctx, ContextKeyUserInfo, userInfo)
			ctx = context.WithValue(ctx, ContextKeyKeyringProvider, keyringProvider)
			ctx = context.WithValue(ctx, ContextKeyDisableFileLogs, true)
			ctx = context.WithValue(ctx, ContextKeyTerminal, testTerminal(scenario.Terminal))
			if scenario.UI != nil {
				ctx = context.WithValue(ctx, ContextKeyUI, scenario.UI)
			}

			testCmd.SetArgs(scenario.Command)

			var actual TestExpectation
			err := testCmd.ExecuteContext(ctx)
			if err != nil {
				actual.Error = err.Error()
			}

			actual.DisplayedObjects = mockRenderer.DisplayedObjects
			actual.DisplayFormat = mockRenderer.DisplayFormat
			if scenario.Expected.Stdout != nil {
				actual.Stdout = stringPtr(stdout.String())
			}
			if scenario.Expected.Stderr != nil {
				actual.Stderr = stringPtr(stderr.String())
			}

			if diff := cmp.Diff(scenario.Expected, actual, s.CmpOptions...); diff != "" {
				t.Errorf("%s() mismatch (-want +got):\n%s", scenario.Name, diff)
			}

			for path, want := range scenario.ExpectedFiles {
				got, err := fs.ReadFile(path)
				if err != nil {
					t.Errorf("failed to read %s: %v", path, err)
					continue
				}
				if diff := cmp.Diff(want, string(got)); diff != "" {
					t.Errorf("%s content mismatch (-want +got):\n%s", path, diff)
				}
			}
		})
	}
}

// testTerminal stands in for the controlling terminal. A nil input means
// no terminal is attached.
func testTerminal(input *string) TerminalOpener {
	return func() (io.ReadCloser, error) {
		if input == nil {
			return nil, errors.New("no terminal attached")
		}
		return io.NopCloser(strings.NewReader(*input)), nil
	}
}

// setupDefaultUserInfo registers fallbacks after any scenario specific
// expectations, which gomock matches first.
func setupDefaultUserInfo(userInfo *mocks.MockUserInfo) {
	userInfo.EXPECT().HomeDir().Return(testHomeDir, nil).AnyTimes()
	userInfo.EXPECT().GistpadConfigDir().Return(testConfigDir, nil).AnyTimes()
	userInfo.EXPECT().GistpadLogDir().Return(testHomeDir+"/.local/state/gistpad", nil).AnyTimes()
	userInfo.EXPECT().Cwd().Return(testCwd, nil).AnyTimes()
}
