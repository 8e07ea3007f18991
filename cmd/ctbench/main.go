package main

import (
	"os"

	"github.com/shivanshkc/ctbench/internal/cli"
	"github.com/shivanshkc/ctbench/pkg/examples"
)

func main() {
	if err := cli.Execute(examples.All()); err != nil {
		os.Exit(1)
	}
}
