package tour

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Scaffold writes a fresh tour document for the given metadata. Existing
// files are not overwritten.
func Scaffold(tourFilePath string, t *Tour) error {
	if _, err := os.Stat(tourFilePath); err == nil {
		return fmt.Errorf("tour file '%s' already exists", tourFilePath)
	}

	fm := frontMatter{
		Title:  t.Title,
		Date:   yamlDate(t.Date),
		GPX:    t.GPXPath,
		Photos: t.Photos,
	}

	fmBytes, err := yaml.Marshal(&fm)
	if err != nil {
		return fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fmBytes)
	buf.WriteString("---\n\n")
	fmt.Fprintf(&buf, "# %s\n\nDescribe the tour here.\n", t.Title)

	if err := os.WriteFile(tourFilePath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write tour file: %w", err)
	}

	return nil
}
