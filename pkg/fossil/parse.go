package fossil

import (
	"encoding/json"
	"regexp"
	"strings"

	fossilV1 "fossil-api/pkg/north/api/fossil/core/v1"
)

const dotMarker = "digraph"

var (
	wikiTagPattern   = regexp.MustCompile(`(?is)\[\[\s*Wiki\s*:\s*(.*?)\s*\]\]`)
	boldPattern      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	openFencePattern = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")
)

// ExtractKeyword returns the [[Wiki: X]] tag content, falling back to the first bold run.
func ExtractKeyword(reply string) string {
	if match := wikiTagPattern.FindStringSubmatch(reply); match != nil {
		keyword := strings.TrimSpace(match[1])
		return strings.NewReplacer("*", "", "_", "").Replace(keyword)
	}
	if match := boldPattern.FindStringSubmatch(reply); match != nil {
		return strings.TrimSpace(match[1])
	}
	return ""
}

// CleanResponse drops every wiki tag from the text shown to the user.
func CleanResponse(reply string) string {
	return strings.TrimSpace(wikiTagPattern.ReplaceAllString(reply, ""))
}

func CleanDot(reply string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(reply, "```dot", ""), "```", ""))
}

func ValidateDot(source string) bool {
	return strings.Contains(source, dotMarker)
}

// StripFences removes markdown code fences of any language around a reply.
func StripFences(reply string) string {
	return strings.TrimSpace(openFencePattern.ReplaceAllString(reply, ""))
}

// ParseFossilRecord reads the bury reply. The first {...} span is decoded so that prose
// around the json is tolerated; anything unusable becomes a not found record.
func ParseFossilRecord(reply string, lat, lng float64) *fossilV1.FossilRecord {
	notFound := func(reason string) *fossilV1.FossilRecord {
		return &fossilV1.FossilRecord{Found: false, Reason: reason, Lat: lat, Lng: lng}
	}

	body := StripFences(reply)
	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return notFound(msgRecordUnreadable)
	}

	record := &fossilV1.FossilRecord{}
	if err := json.Unmarshal([]byte(body[start:end+1]), record); err != nil {
		return notFound(msgRecordUnreadable)
	}
	record.Lat = lat
	record.Lng = lng
	if record.Found && record.Name == "" && record.ScientificName == "" {
		return notFound(msgRecordUnreadable)
	}
	if !record.Found && record.Reason == "" {
		record.Reason = msgNothingFound
	}
	return record
}
