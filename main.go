package main

import "github.com/nudge-cli/nudge/cmd"

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Die(err)
	}
}
