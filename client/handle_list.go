package client

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cBlueShell/cIBMWebSphereAppServer/conf"
	"github.com/cBlueShell/cIBMWebSphereAppServer/shared/running"
	"github.com/cBlueShell/cIBMWebSphereAppServer/wsadmin"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

func handleList(args []string) int {
	listCmd := flag.NewFlagSet("list", flag.ContinueOnError)
	listCmd.SetOutput(stderr)

	format := listCmd.String("format", conf.Get().Client.DefaultFormat, "Output format: "+strings.Join(conf.Formats, ", "))
	filter := listCmd.String("filter", "", "Only print tokens fuzzy-matching the pattern")
	ignoreCase := listCmd.Bool("i", false, "Case-insensitive filter")

	if isHelp(args) {
		fmt.Fprintln(stdout, "Usage: "+running.ExecutableName()+" list [options] [file]")
		fmt.Fprintln(stdout, "Reads stdin when file is omitted or -.")
		fmt.Fprintln(stdout, "Options:")
		listCmd.SetOutput(stdout)
		listCmd.PrintDefaults()
		return 0
	}

	if err := listCmd.Parse(args); err != nil {
		return 1
	}

	if !conf.IsFormat(*format) {
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return 1
	}

	input, err := readInput(listCmd.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

	tokens := wsadmin.ToList(input)
	if *filter != "" {
		tokens = filterTokens(tokens, *filter, *ignoreCase)
	}
	log.Printf("Parsed %d tokens", len(tokens))

	if err := printTokens(tokens, *format); err != nil {
		fmt.Fprintf(stderr, "Error printing tokens: %v\n", err)
		return 1
	}
	return 0
}

func filterTokens(tokens []string, pattern string, ignoreCase bool) []string {
	matched := []string{}
	if ignoreCase {
		matched = append(matched, fuzzy.FindFold(pattern, tokens)...)
	} else {
		matched = append(matched, fuzzy.Find(pattern, tokens)...)
	}
	return matched
}

func printTokens(tokens []string, format string) error {
	switch format {
	case conf.FormatJSON:
		return printJSON(tokens)
	case conf.FormatYAML:
		return printYAML(tokens)
	case conf.FormatBracket:
		_, err := fmt.Fprintln(stdout, wsadmin.FormatList(tokens))
		return err
	default:
		for _, token := range tokens {
			if _, err := fmt.Fprintln(stdout, token); err != nil {
				return err
			}
		}
		return nil
	}
}
