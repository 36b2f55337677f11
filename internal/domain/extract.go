package domain

import (
	"regexp"
	"strings"
)

const fenceMarker = "```"

var (
	// Non-greedy so each fenced region is captured on its own.
	fencedRegion = regexp.MustCompile("(?s)```.*?```")
	openingFence = regexp.MustCompile("^```[\\w+#-]*\\n?")
	closingFence = regexp.MustCompile("\\n?```$")
)

// ExtractCode splits a raw model response into the explanation preceding the
// first fence and the concatenated contents of every fenced region.
//
// Without any fence marker both return values equal raw. Malformed or nested
// fences are handled on a best-effort basis.
func ExtractCode(raw string) (explanation, code string) {
	first := strings.Index(raw, fenceMarker)
	if first < 0 {
		return raw, raw
	}

	explanation = strings.TrimSpace(raw[:first])

	regions := fencedRegion.FindAllString(raw, -1)
	if len(regions) == 0 {
		return explanation, raw
	}

	blocks := make([]string, 0, len(regions))
	for _, region := range regions {
		inner := openingFence.ReplaceAllString(region, "")
		inner = closingFence.ReplaceAllString(inner, "")
		blocks = append(blocks, inner)
	}

	return explanation, strings.Join(blocks, "\n\n")
}
