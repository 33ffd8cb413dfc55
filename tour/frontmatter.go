package tour

import (
	"bytes"
	"fmt"
)

var frontMatterMarker = []byte("---")

// splitFrontMatter separates the YAML front matter block from the markdown
// body. A document without a leading marker is treated as all body.
func splitFrontMatter(source []byte) (fm []byte, body []byte, err error) {
	trimmed := bytes.TrimLeft(source, " \t\r\n")
	if !startsWithMarker(trimmed) {
		return nil, source, nil
	}

	rest := trimmed[len(frontMatterMarker):]
	end := findMarker(rest)
	if end < 0 {
		return nil, source, fmt.Errorf("front matter opened but never closed")
	}

	return rest[:end], rest[end+len(frontMatterMarker):], nil
}

func startsWithMarker(source []byte) bool {
	return bytes.HasPrefix(source, frontMatterMarker)
}

func findMarker(source []byte) int {
	offset := 0
	for {
		idx := bytes.Index(source[offset:], frontMatterMarker)
		if idx < 0 {
			return -1
		}

		pos := offset + idx
		// The closing marker must start a line.
		if pos == 0 || source[pos-1] == '\n' {
			return pos
		}

		offset = pos + len(frontMatterMarker)
	}
}
