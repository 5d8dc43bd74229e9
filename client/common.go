package client

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cBlueShell/cIBMWebSphereAppServer/conf"
	fsutils "github.com/cBlueShell/cIBMWebSphereAppServer/utils/fs"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"gopkg.in/yaml.v3"
)

// readInput reads the single optional file argument, falling back to stdin.
func readInput(args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("expected at most one input file, got %d", len(args))
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	data, err := fsutils.ReadInput(path, stdin, conf.Get().Client.MaxInputBytes)
	if err != nil {
		return "", err
	}

	if len(data) > 0 {
		if mtype := mimetype.Detect(data); !isText(mtype) {
			log.Printf("Input %s looks like %s, parsing it anyway", path, mtype.String())
		}
	}
	log.Printf("Read %s from %s", humanize.Bytes(uint64(len(data))), path)

	return string(data), nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "text/") {
			return true
		}
	}
	return false
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

func printYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
