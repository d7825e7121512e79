package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jaredthirsk/claude-code-templates/cmd"
	"github.com/jaredthirsk/claude-code-templates/pkg/output"
	"github.com/mattn/go-colorable"
)

func main() {
	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.WithErrorFormat("ERROR: %v", err))
		restoreColorMode()
		os.Exit(1)
	}
}
