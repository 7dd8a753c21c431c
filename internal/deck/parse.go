package deck

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse reads a single markdown source. Frontmatter is optional; the body
// is split into slides on lines consisting of "---" outside code fences.
// A leading "---" block only counts as frontmatter when it holds a YAML
// mapping, so a deck may open with a separator.
func Parse(source string, data []byte) (Meta, []Slide, error) {
	var (
		meta Meta
		head any
	)
	body, err := frontmatter.Parse(bytes.NewReader(data), &head)
	if err != nil {
		return Meta{}, nil, &ParseError{Path: source, Line: extractLine(err), Err: err}
	}
	if isMapping(head) {
		if body, err = frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
			return Meta{}, nil, &ParseError{Path: source, Line: extractLine(err), Err: err}
		}
	} else {
		body = data
	}

	var slides []Slide
	for _, chunk := range Split(string(body)) {
		n := len(slides) + 1
		slides = append(slides, Slide{
			ID:     fmt.Sprintf("%s#%d", source, n),
			Title:  headingTitle(chunk),
			Body:   chunk,
			Source: source,
		})
	}
	return meta, slides, nil
}

// Split breaks markdown into slide bodies. Blank slides are dropped.
func Split(markdown string) []string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	lines := strings.Split(markdown, "\n")

	var (
		chunks  []string
		current []string
		fence   string
	)
	flush := func() {
		chunk := strings.Trim(strings.Join(current, "\n"), "\n")
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
		current = current[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
		}
		if fence == "" && trimmed == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return chunks
}

func fenceMarker(line string) string {
	switch {
	case strings.HasPrefix(line, "```"):
		return "```"
	case strings.HasPrefix(line, "~~~"):
		return "~~~"
	default:
		return ""
	}
}

func isMapping(v any) bool {
	switch v.(type) {
	case map[any]any, map[string]any:
		return true
	}
	return false
}

func headingTitle(chunk string) string {
	for _, line := range strings.Split(chunk, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	return ""
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
