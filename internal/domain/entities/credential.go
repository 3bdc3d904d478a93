package entities

import (
	"errors"
	"os"
	"strings"
)

var errEmptyToken = errors.New("token file is empty")

// ReadToken reads the bearer token from path with all whitespace removed.
func ReadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &InputError{Path: path, Err: err}
	}

	token := strings.Join(strings.Fields(string(data)), "")
	if token == "" {
		return "", &InputError{Path: path, Err: errEmptyToken}
	}
	return token, nil
}
