package cli

import (
	"fmt"
	"os"
	"strings"
)

// keyInput resolves a key given either inline or as a path to a file holding the hex text.
// Surrounding whitespace (e.g. a trailing newline) is removed.
func keyInput(name, inline, path string) (string, error) {
	switch {
	case inline != "" && path != "":
		return "", fmt.Errorf("use either --%s or --%s-file, not both", name, name)
	case inline != "":
		return strings.TrimSpace(inline), nil
	case path != "":
		// #nosec G304 -- the path is supplied by the user running the tool
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s file: %w", name, err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("--%s or --%s-file is required", name, name)
	}
}
