package fail

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/furisto/gistpad/frontend/cli/pkg/terminal"
	"github.com/furisto/gistpad/shared/resilience"
)

const issuesURL = "https://github.com/furisto/gistpad/issues/new"

type UserError struct {
	Cause       error
	UserMessage string
	Solutions   []string
	TechDetails string
	HelpURLs    []string
}

func (e *UserError) Error() string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("%s %s\n\n", terminal.ErrorSymbol, terminal.Bold(e.UserMessage)))

	if len(e.Solutions) > 0 {
		msg.WriteString(fmt.Sprintf("%s Try these solutions:\n", terminal.InfoSymbol))
		for i, solution := range e.Solutions {
			msg.WriteString(fmt.Sprintf("  %d. %s\n", i+1, solution))
		}
		msg.WriteString("\n")
	}

	if e.TechDetails != "" {
		msg.WriteString(fmt.Sprintf("Technical details: %s\n", e.TechDetails))
	}

	if len(e.HelpURLs) > 0 {
		msg.WriteString("If the problem persists:\n")
		for _, url := range e.HelpURLs {
			msg.WriteString(fmt.Sprintf("%s %s\n", terminal.LinkSymbol, url))
		}
	}

	return msg.String()
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

func NewPermissionError(path string, err error) *UserError {
	return &UserError{
		Cause:       err,
		UserMessage: fmt.Sprintf("Permission denied accessing %s", path),
		Solutions: []string{
			"Check file permissions and ownership",
			"Verify the path exists and is readable",
		},
		TechDetails: fmt.Sprintf("Failed to access %s: %v", path, err),
		HelpURLs:    []string{issuesURL},
	}
}

func NewConnectionError(err error) *UserError {
	return &UserError{
		Cause:       err,
		UserMessage: "Cannot reach the gist API",
		Solutions: []string{
			"Check your network connection",
			"Verify the endpoint of the current context: gistpad context list",
			"Retry in a few seconds if the service is degraded",
		},
		TechDetails: err.Error(),
		HelpURLs:    []string{"https://www.githubstatus.com", issuesURL},
	}
}

func newAPIError(err error, apiErr *gist.APIError) *UserError {
	userErr := &UserError{
		Cause:       err,
		TechDetails: apiErr.Error(),
	}
	if apiErr.DocumentationURL != "" {
		userErr.HelpURLs = append(userErr.HelpURLs, apiErr.DocumentationURL)
	}

	switch {
	case apiErr.StatusCode == 401:
		userErr.UserMessage = "The gist API rejected your credentials"
		userErr.Solutions = []string{
			"Export a valid token: export GITHUB_TOKEN=<token>",
			"Store a token for the current context: gistpad context add <name> --endpoint <url> --auth-token",
		}
	case apiErr.StatusCode == 403 && strings.Contains(strings.ToLower(apiErr.Message), "rate limit"):
		userErr.UserMessage = "The gist API rate limit is exhausted"
		userErr.Solutions = []string{
			"Wait until the rate limit resets",
			"Authenticate to raise the limit: export GITHUB_TOKEN=<token>",
		}
	case apiErr.StatusCode == 403:
		userErr.UserMessage = "Your token is not allowed to perform this operation"
		userErr.Solutions = []string{
			"Make sure the token has the 'gist' scope",
			"Check that you own the gist you are modifying",
		}
	case apiErr.StatusCode == 404:
		userErr.UserMessage = "The gist or file does not exist"
		userErr.Solutions = []string{
			"Check the gist id: gistpad gist list",
			"Secret gists are only visible with the owner's token",
		}
	case apiErr.StatusCode == 422:
		userErr.UserMessage = "The gist API rejected the request"
		userErr.Solutions = []string{
			"Gist files must not be empty",
			"File names must be unique within a gist",
		}
	case apiErr.StatusCode == 429:
		userErr.UserMessage = "Too many requests to the gist API"
		userErr.Solutions = []string{"Wait a moment and try again"}
	default:
		return nil
	}

	userErr.HelpURLs = append(userErr.HelpURLs, issuesURL)
	return userErr
}

// EnhanceError turns well known failures into user errors with suggested
// solutions. Other errors are returned unchanged.
func EnhanceError(err error, context map[string]any) error {
	if err == nil {
		return nil
	}

	var userErr *UserError
	if errors.As(err, &userErr) {
		return err
	}

	var appendErr *pad.AppendError
	if errors.As(err, &appendErr) {
		return &UserError{
			Cause:       err,
			UserMessage: fmt.Sprintf("Some files could not be added to gist %s", appendErr.GistID),
			Solutions: []string{
				"Files that were written are kept; retry with the failed files only",
				fmt.Sprintf("Inspect the gist: gistpad gist show %s", appendErr.GistID),
			},
			TechDetails: err.Error(),
			HelpURLs:    []string{issuesURL},
		}
	}

	var apiErr *gist.APIError
	if errors.As(err, &apiErr) {
		if enhanced := newAPIError(err, apiErr); enhanced != nil {
			return enhanced
		}
	}

	if errors.Is(err, resilience.ErrCircuitOpen) {
		return NewConnectionError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewConnectionError(err)
	}

	if errors.Is(err, os.ErrPermission) {
		if path, ok := context["path"].(string); ok {
			return NewPermissionError(path, err)
		}
	}

	if errors.Is(err, os.ErrNotExist) {
		return &UserError{
			Cause:       err,
			UserMessage: "Required file or directory not found",
			Solutions: []string{
				"Verify the path exists and is accessible",
				"Paths are resolved relative to the current directory",
			},
			TechDetails: err.Error(),
			HelpURLs:    []string{issuesURL},
		}
	}

	return err
}
