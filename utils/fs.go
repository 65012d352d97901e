package utils

import (
	"errors"
	log "github.com/mhmorgan/termlog"
	"os"
	"path/filepath"
)

// fs provides simplified functionality for the filesystem
// which should reduce boilerplate code. Mainly for error
// handling.

// Home returns the home directory of the current user,
// or calls log.Fatal if it cannot be determined.
func Home() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}
	return home
}

// RelHome returns an absolute path of the given path
// relative to the home directory.
func RelHome(path string) string {
	return filepath.Join(Home(), path)
}

// PathExists reports whether the given path exists.
//
// Errors other than "does not exist" are returned, since they
// leave the answer unknown.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
