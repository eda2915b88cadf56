// Package testdata locates UCD files downloaded by download.go.
package testdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// UCDReader opens the given UCD file. Clients must close it.
func UCDReader(file string) (io.ReadCloser, error) {
	f, err := os.Open(UCDPath(file))
	if err != nil {
		return nil, fmt.Errorf("UCD file %s not found, run download.go: %w", file, err)
	}
	return f, nil
}

// UCDPath returns path for the given ucd file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
