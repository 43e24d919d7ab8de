package main

import "github.com/PlayWeird/cube-combinatorics/internal/cli"

func main() {
	cli.Execute()
}
