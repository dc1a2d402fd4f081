package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

var ErrNoInput = errors.New("no input: pass a file or pipe XML on stdin")

// readInput reads the file named by the first argument, or stdin when it is piped.
func readInput(args []string) (data []byte, source string, err error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(args[0]), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, "", ErrNoInput
	}

	data, err = io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, "stdin", nil
}
