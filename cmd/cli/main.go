package main

import "github.com/refchain-analysis/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
