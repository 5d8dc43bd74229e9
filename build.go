//go:build ignore

package main

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

type Target struct {
	GOOS   string
	GOARCH string
	Ext    string
}

var targets = []Target{
	{"windows", "amd64", ".exe"},
	{"linux", "amd64", ""},
	{"linux", "arm64", ""},
	{"linux", "ppc64le", ""},
	{"linux", "s390x", ""},
	{"aix", "ppc64", ""},
	{"darwin", "arm64", ""},
}

func main() {
	appName := "wslist"
	outputDir := "dist"
	version := getVersion()

	os.RemoveAll(outputDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		panic(err)
	}

	for _, t := range targets {
		fmt.Printf("Building for %s/%s...\n", t.GOOS, t.GOARCH)

		binPath := filepath.Join(outputDir, appName+t.Ext)
		ldflags := fmt.Sprintf("-s -w -X 'main.version=%s'", version)

		cmd := exec.Command("go", "build", "-trimpath", "-ldflags", ldflags, "-o", binPath, ".")
		cmd.Env = append(os.Environ(),
			"GOOS="+t.GOOS,
			"GOARCH="+t.GOARCH,
			"CGO_ENABLED=0",
		)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
			continue
		}

		files := []string{binPath, "config.example.yaml"}
		archive := fmt.Sprintf("%s-%s-%s-v%s", appName, t.GOOS, t.GOARCH, version)

		var err error
		if t.GOOS == "windows" {
			archive += ".zip"
			err = writeZip(filepath.Join(outputDir, archive), files)
		} else {
			archive += ".tar.gz"
			err = writeTarGz(filepath.Join(outputDir, archive), files)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Packaging failed: %v\n", err)
		} else {
			fmt.Printf("Packaged: %s\n", archive)
		}

		_ = os.Remove(binPath)
	}

	os.WriteFile(filepath.Join(outputDir, "VERSION"), []byte(version), 0644)
}

func getVersion() string {
	data, err := os.ReadFile("VERSION")
	if err != nil {
		fmt.Println("Failed to read VERSION file:", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(data))
}

func writeZip(path string, files []string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := zip.NewWriter(out)
	defer w.Close()

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.Base(file)
		header.Method = zip.Deflate

		writer, err := w.CreateHeader(header)
		if err != nil {
			return err
		}
		if err := copyFile(writer, file); err != nil {
			return err
		}
	}
	return nil
}

func writeTarGz(path string, files []string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.Base(file)

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if err := copyFile(tw, file); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
