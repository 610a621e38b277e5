package helpers

import "strings"

// HighlightSegment is a section of text, flagged when it matches the search term.
type HighlightSegment struct {
	Text  string
	Match bool
}

// HighlightSegments splits text into segments with case-insensitive matches of term flagged.
func HighlightSegments(text, term string) []HighlightSegment {
	if text == "" {
		return nil
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return []HighlightSegment{{Text: text}}
	}

	lowerText := strings.ToLower(text)
	lowerTerm := strings.ToLower(term)
	// Case folding can change byte lengths for some scripts; fall back to plain text then.
	if len(lowerText) != len(text) {
		return []HighlightSegment{{Text: text}}
	}

	var segments []HighlightSegment
	cursor := 0
	for cursor < len(lowerText) {
		index := strings.Index(lowerText[cursor:], lowerTerm)
		if index < 0 {
			break
		}
		if index > 0 {
			segments = append(segments, HighlightSegment{Text: text[cursor : cursor+index]})
		}
		matchEnd := cursor + index + len(lowerTerm)
		segments = append(segments, HighlightSegment{Text: text[cursor+index : matchEnd], Match: true})
		cursor = matchEnd
	}

	if cursor < len(text) {
		segments = append(segments, HighlightSegment{Text: text[cursor:]})
	}
	return segments
}
