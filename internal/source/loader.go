package source

import (
	"fmt"
	"os"
	"strings"
)

// Input describes how to load a text input.
type Input struct {
	// Name is used in error messages to give more context about the input.
	Name string
	// Value is inline text provided via configuration or flags.
	Value string
	// File points to a file containing the text. When set it takes
	// precedence over Value.
	File string
}

// Load returns the resolved text from the provided input. When File is
// set it takes precedence over Value. The returned text is always
// trimmed. An error is returned when neither File nor Value contain
// usable text.
func Load(in Input) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "input"
	}

	file := strings.TrimSpace(in.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		in.Value = string(data)
		in.File = file
	}

	text := strings.TrimSpace(in.Value)
	if text == "" {
		if in.File != "" {
			return "", fmt.Errorf("%s file %q is empty", name, in.File)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return text, nil
}
