package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/frontend/cli/pkg/fail"
	"github.com/furisto/gistpad/shared/config"
)

// Build metadata, set through -ldflags at release time.
var (
	Version   = "unknown"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type globalOptions struct {
	LogLevel logLevelFlag
	Context  string
}

func NewRootCmd() *cobra.Command {
	options := globalOptions{}
	cmd := &cobra.Command{
		Use:           "gistpad",
		Short:         "gistpad: Attach files to GitHub gists and paste them back.",
		Long:          figure.NewColorFigure("gistpad", "standard", "blue", true).String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			userInfo := getUserInfo(cmd.Context())

			setupLogging(cmd.Context(), userInfo, cmd.ErrOrStderr(), options.LogLevel)
			cmd.SetContext(setGlobalOptions(cmd.Context(), &options))

			configStore, err := config.NewStore(getFileSystem(cmd.Context()), userInfo)
			if err != nil {
				return err
			}
			cmd.SetContext(setConfigStore(cmd.Context(), configStore))

			if requiresStore(cmd) {
				if err := setStore(cmd, options.Context); err != nil {
					slog.Debug("failed to set up gist store", "error", err)
					return err
				}
			}

			return nil
		},
	}

	cmd.PersistentFlags().Var(&options.LogLevel, "log-level", "log level: debug, info, warn or error (env GISTPAD_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&options.Context, "context", "", "context to use (overrides current context)")

	cmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Gist Commands"},
		&cobra.Group{ID: "system", Title: "Configuration Commands"},
	)

	cmd.AddCommand(NewGistCmd())
	cmd.AddCommand(NewMappingCmd())
	cmd.AddCommand(NewContextCmd())
	cmd.AddCommand(NewVersionCmd())
	return cmd
}

func Execute() {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sentry.CurrentHub().Recover(r)
		sentry.Flush(2 * time.Second)
		fmt.Fprintf(os.Stderr, "gistpad crashed: %v\n\n%s\n", r, debug.Stack())
		os.Exit(2)
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// a missing .env file is the common case
	_ = godotenv.Load()

	if dsn := os.Getenv("GISTPAD_SENTRY_DSN"); dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     dsn,
			Release: "gistpad@" + Version,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize sentry: %s\n", err)
		}
	}

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			sentry.CaptureException(err)
		}
		fmt.Fprintln(os.Stderr, fail.EnhanceError(err, nil))
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}

	sentry.Flush(2 * time.Second)
}

func setStore(cmd *cobra.Command, contextOverride string) error {
	if getGistStore(cmd.Context()) != nil {
		return nil
	}

	contextManager := getContextManager(cmd.Context())
	endpointContexts, err := contextManager.LoadContext()
	if err != nil {
		return err
	}

	if err := endpointContexts.Validate(); err != nil {
		return err
	}

	endpointContext := defaultEndpointContext()

	contextName := resolveContextName(contextOverride, endpointContexts.CurrentContext)
	if contextName != "" {
		configured, ok := endpointContexts.Contexts[contextName]
		if !ok {
			return fmt.Errorf("context %q not found", contextName)
		}
		endpointContext = configured
	}

	clientOptions, err := buildClientOptions(endpointContext, contextManager)
	if err != nil {
		return fmt.Errorf("failed to configure client: %w", err)
	}

	client, err := gist.NewClient(endpointContext.Address, clientOptions...)
	if err != nil {
		return fmt.Errorf("failed to create gist client: %w", err)
	}

	slog.Debug("using gist endpoint", "context", contextName, "address", endpointContext.Address)
	cmd.SetContext(setGistStore(cmd.Context(), client))
	cmd.SetContext(context.WithValue(cmd.Context(), ContextKeyEndpointContext, endpointContext))

	return nil
}

func resolveContextName(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envValue := os.Getenv("GISTPAD_CONTEXT"); envValue != "" {
		return envValue
	}

	return configValue
}

func requiresStore(cmd *cobra.Command) bool {
	parent := cmd.Parent()
	return parent != nil && parent.Name() == "gist"
}

