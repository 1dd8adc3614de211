package main

import "github.com/furisto/gistpad/frontend/cli/cmd"

func main() {
	cmd.Execute()
}
