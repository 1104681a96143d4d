package preflight

import (
	"fmt"
	"os"
	"strings"
)

// CheckPresence reports whether the file at path contains marker. A
// missing or unreadable file is an error so the caller can warn with the
// actual cause instead of a bare "not found".
func CheckPresence(path, marker string) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("file not found: %s", path)
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return strings.Contains(string(b), marker), nil
}
