package utils

import (
	"errors"
	"os"

	"github.com/n0mad-samurai/photo2geo/failure"
)

// CheckInPath validates that the search directory exists and is readable.
func CheckInPath(path string) (string, error) {
	if err := checkExists(path); err != nil {
		return "", err
	}
	if !readable(path) {
		return "", failure.New(failure.KindPath, "check", "Directory is not readable", path)
	}
	return path, nil
}

// CheckOutPath validates that the output directory exists and is writeable.
func CheckOutPath(path string) (string, error) {
	if err := checkExists(path); err != nil {
		return "", err
	}
	if !writable(path) {
		return "", failure.New(failure.KindPath, "check", "Directory is not writeable", path)
	}
	return path, nil
}

func checkExists(path string) error {
	if path == "" {
		return failure.New(failure.KindPath, "check", "Path does not exist", `""`)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return failure.New(failure.KindPath, "check", "Path does not exist", path)
		}
		return failure.Wrap(failure.KindPath, "check", "Path cannot be accessed", path, err)
	}
	return nil
}
