//go:build !unix

package utils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = f.Readdirnames(1)
		return err == nil || errors.Is(err, io.EOF)
	}
	return true
}

func writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}
	f, err := os.CreateTemp(dir, ".photo2geo-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
