package main

import "github.com/katalvlaran/spantree/internal/cli"

func main() {
	cli.Execute()
}
