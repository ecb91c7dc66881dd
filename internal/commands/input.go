package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// inputReader reads a JSON document from a file or from piped stdin.
type inputReader struct {
	fileFlagValue string
	stdin         io.Reader
}

func (r *inputReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &r.fileFlagValue,
	}
}

func (r *inputReader) Read() ([]byte, error) {
	if r.fileFlagValue != "" {
		data, err := os.ReadFile(r.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}

	stdin := r.stdin
	if stdin == nil {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		stdin = os.Stdin
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
