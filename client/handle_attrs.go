package client

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cBlueShell/cIBMWebSphereAppServer/conf"
	"github.com/cBlueShell/cIBMWebSphereAppServer/shared/running"
	"github.com/cBlueShell/cIBMWebSphereAppServer/wsadmin"
)

type attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

func handleAttrs(args []string) int {
	attrsCmd := flag.NewFlagSet("attrs", flag.ContinueOnError)
	attrsCmd.SetOutput(stderr)

	format := attrsCmd.String("format", conf.Get().Client.DefaultFormat, "Output format: "+strings.Join(conf.Formats, ", "))
	name := attrsCmd.String("name", "", "Only print the value of this attribute")

	if isHelp(args) {
		fmt.Fprintln(stdout, "Usage: "+running.ExecutableName()+" attrs [options] [file]")
		fmt.Fprintln(stdout, "Reads AdminConfig.show output from stdin when file is omitted or -.")
		fmt.Fprintln(stdout, "Options:")
		attrsCmd.SetOutput(stdout)
		attrsCmd.PrintDefaults()
		return 0
	}

	if err := attrsCmd.Parse(args); err != nil {
		return 1
	}

	if !conf.IsFormat(*format) {
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return 1
	}

	input, err := readInput(attrsCmd.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

	attrs, err := wsadmin.ParseAttributes(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing attributes: %v\n", err)
		return 1
	}
	log.Printf("Parsed %d attributes", len(attrs))

	if *name != "" {
		value, ok := wsadmin.Lookup(attrs, *name)
		if !ok {
			fmt.Fprintf(stderr, "Error: attribute %q not found\n", *name)
			return 1
		}
		err = printValue(value, *format)
	} else {
		err = printAttributes(attrs, *format)
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error printing attributes: %v\n", err)
		return 1
	}
	return 0
}

func printAttributes(attrs []wsadmin.Attribute, format string) error {
	switch format {
	case conf.FormatJSON, conf.FormatYAML:
		out := make([]attribute, 0, len(attrs))
		for _, attr := range attrs {
			out = append(out, attribute{Name: attr.Name, Value: plainValue(attr.Value)})
		}
		if format == conf.FormatJSON {
			return printJSON(out)
		}
		return printYAML(out)
	case conf.FormatBracket:
		for _, attr := range attrs {
			if _, err := fmt.Fprintln(stdout, attr.String()); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, attr := range attrs {
			if _, err := fmt.Fprintf(stdout, "%s=%s\n", attr.Name, attr.Value.String()); err != nil {
				return err
			}
		}
		return nil
	}
}

func printValue(value wsadmin.Value, format string) error {
	switch format {
	case conf.FormatJSON:
		return printJSON(plainValue(value))
	case conf.FormatYAML:
		return printYAML(plainValue(value))
	case conf.FormatBracket:
		_, err := fmt.Fprintln(stdout, value.String())
		return err
	default:
		return printTokens(value.Tokens(), conf.FormatLines)
	}
}

// plainValue converts v into strings and slices for json and yaml output.
func plainValue(v wsadmin.Value) any {
	if !v.IsList {
		return v.Scalar
	}

	items := make([]any, 0, len(v.List))
	for _, item := range v.List {
		items = append(items, plainValue(item))
	}
	return items
}
