package main

import (
	"github.com/minewars/sessiontrack/internal/cli"
)

func main() {
	cli.Execute()
}
