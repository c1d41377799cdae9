package main

import (
	"os"

	"github.com/kyleawayan/fountain-setup-scheduler/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
