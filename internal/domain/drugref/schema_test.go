package drugref

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// The drugs DDL must agree with the Drug model: the list fields scan into
// []string and need text[] columns, while warnings is a single string.
func TestDrugsTableColumnsMatchModel(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	start := strings.Index(string(raw), "CREATE TABLE drugs")
	if start < 0 {
		t.Fatal("drugs table not found in migration")
	}
	block := string(raw)[start:]
	if end := strings.Index(block, ");"); end >= 0 {
		block = block[:end]
	}

	arrayCols := []string{
		"brand_names", "interactions", "food_interactions",
		"contraindications", "side_effects",
	}
	for _, col := range arrayCols {
		re := regexp.MustCompile(`(?m)^\s*` + col + `\s+TEXT\[\]`)
		if !re.MatchString(block) {
			t.Errorf("column %s must be TEXT[]", col)
		}
	}

	if regexp.MustCompile(`(?m)^\s*warnings\s+TEXT\[\]`).MatchString(block) {
		t.Error("warnings must not be an array column")
	}
	if !regexp.MustCompile(`(?m)^\s*warnings\s+TEXT\s`).MatchString(block) {
		t.Error("warnings must be a TEXT column")
	}
}
