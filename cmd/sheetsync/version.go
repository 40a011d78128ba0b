package main

import "fmt"

// version output variables
var (
	commit     = "unknown"
	version    = "unknown"
	date       = "unknown"
	sinkSchema = "00001"
)

func printVersion() {
	fmt.Printf(`
Version info:
  Version:       %s
  Sink Schema:   %s
  Git Commit:    %s
  Built:         %s

`, version, sinkSchema, commit, date)
}
