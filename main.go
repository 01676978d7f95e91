package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"ssv/internal/cli"
	"ssv/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "ssv crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	os.Exit(cli.Execute(cli.BuildInfo{Version: version, Commit: commit, Date: date}, os.Args[1:]))
}
