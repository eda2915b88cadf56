//go:build ignore
// +build ignore

// Download fetches the UCD files used by tests of the bidi package and the
// bracket generator. Run from this directory with
//
//    go run download.go
//
package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const ucdVersion = "15.0.0"

// files to extract from UCD.zip
var bidiFiles = map[string]bool{
	"BidiTest.txt":          true,
	"BidiCharacterTest.txt": true,
	"BidiBrackets.txt":      true,
}

func main() {
	url := "https://www.unicode.org/Public/" + ucdVersion + "/ucd/UCD.zip"
	err := downloadUCDZip(url, "ucd")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func downloadUCDZip(url, dir string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}

	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to extract: %w", err)
	}

	for _, file := range z.File {
		if file.FileInfo().IsDir() || !bidiFiles[file.Name] {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to open %v: %w", file.Name, err)
		}
		if err := writeFile(filepath.Join(dir, file.Name), rc); err != nil {
			return fmt.Errorf("failed to write %v: %w", file.Name, err)
		}
		fmt.Printf("extracted %s\n", file.Name)
	}

	return nil
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	defer func() { _ = rc.Close() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
