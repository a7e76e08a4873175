package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotstash/cmd/dotstash"
	"github.com/arthur-debert/dotstash/internal/version"
)

func main() {
	rootCmd := dotstash.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTSTASH",
		Section: "1",
		Source:  "dotstash " + version.Version,
		Manual:  "dotstash manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
