package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmDeletion asks on prompt before deleting the named resources.
// Anything but y or yes, including EOF, declines.
func confirmDeletion(stdin io.Reader, prompt io.Writer, kind string, names []string) bool {
	if len(names) == 0 {
		return false
	}
	if len(names) > 1 {
		kind += "s"
	}

	fmt.Fprintf(prompt, "Are you sure you want to delete %s %s? (y/n): ", kind, strings.Join(names, " "))

	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
