package main

import (
	"fmt"
	"os"

	"github.com/kaiserkarel/cronexpand/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	root := cli.NewRootCmd()
	root.Version = version
	root.SetVersionTemplate(fmt.Sprintf("cronexpand version %s\n", version))

	os.Exit(cli.Execute(root))
}
