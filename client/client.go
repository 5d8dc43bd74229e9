package client

import (
	"fmt"
	"io"
	"os"

	"github.com/cBlueShell/cIBMWebSphereAppServer/shared/running"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the command in args and returns the process exit code.
func Run(args []string) int {
	// Check if there are enough command line arguments
	if len(args) < 1 {
		printUsage()
		return 1
	}

	return processCommand(args)
}

func processCommand(args []string) int {
	command := args[0]

	switch command {
	case "list":
		return handleList(args[1:])
	case "attrs":
		return handleAttrs(args[1:])
	case "version":
		if running.IsDevVersion() {
			fmt.Fprintln(stdout, running.Version()+" (dev build)")
		} else {
			fmt.Fprintln(stdout, running.Version())
		}
		return 0
	case "help":
		if len(args) > 1 {
			return processCommand([]string{args[1], "-h"})
		}
		printUsage()
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(stdout, "Usage: "+running.ExecutableName()+" [-config file] <command> [arguments]")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "  version         Show current version")
	fmt.Fprintln(stdout, "  list            Split a wsadmin list into tokens")
	fmt.Fprintln(stdout, "  attrs           Parse AdminConfig.show attributes")
	fmt.Fprintln(stdout, "  help <command>  Show help for a specific command")
}

func isHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "-h" || args[0] == "--help")
}
