package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var migrationFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// ValidateDir checks that every migration in dir follows the
// <YYYYMMDDHHMMSS>_<snake_case>.sql convention and that no version is duplicated.
func ValidateDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	seen := map[string]string{}
	var problems []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		m := migrationFileRe.FindStringSubmatch(entry.Name())
		if m == nil {
			problems = append(problems, fmt.Sprintf("%s: does not match <version>_<name>.sql", entry.Name()))
			continue
		}
		if prev, ok := seen[m[1]]; ok {
			problems = append(problems, fmt.Sprintf("%s: duplicate version with %s", entry.Name(), prev))
			continue
		}
		seen[m[1]] = entry.Name()
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("invalid migrations in %s:\n  %s", filepath.Clean(dir), strings.Join(problems, "\n  "))
	}
	return nil
}
