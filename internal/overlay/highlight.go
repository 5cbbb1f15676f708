package overlay

import "strings"

// Segment is a run of text with a flag marking it for visual emphasis.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into segments marking every case-insensitive
// occurrence of query. A blank query, or a query with no occurrences, yields
// the whole text as one unmarked segment.
func Highlight(text, query string) []Segment {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return []Segment{{Text: text}}
	}

	lower := strings.ToLower(text)
	q := strings.ToLower(query)

	var segs []Segment
	i := 0
	for {
		j := strings.Index(lower[i:], q)
		if j < 0 {
			break
		}
		j += i
		if j > i {
			segs = append(segs, Segment{Text: text[i:j]})
		}
		segs = append(segs, Segment{Text: text[j : j+len(q)], Match: true})
		i = j + len(q)
	}
	if i < len(text) || len(segs) == 0 {
		segs = append(segs, Segment{Text: text[i:]})
	}
	return segs
}
