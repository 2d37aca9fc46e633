// README: Best-effort entity extraction (destination, interests) from free text.
package session

import (
	"regexp"
	"strings"
)

// Entities is the best-effort extraction result for one message. Absent
// fields are normal; callers must treat these as hints, not facts.
type Entities struct {
	Destination string
	Interests   []string
}

// Destination candidates are capitalized tokens anchored by travel
// prepositions or verbs. No gazetteer: a denylist filters the common
// capitalized non-places instead.
var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:visit|visiting|to|in|at|from|near|around|exploring)\s+([A-Z][a-z]{2,}(?:\s+[A-Z][a-z]+){0,2})`),
	regexp.MustCompile(`\b([A-Z][a-z]{2,}(?:\s+[A-Z][a-z]+){0,2})\s+(?:trip|vacation|itinerary|weather|climate)`),
	regexp.MustCompile(`\b([A-Z][a-z]{2,}(?:\s+[A-Z][a-z]+){0,2})'s\s+(?:weather|food|culture|people|museums|beaches)`),
}

// notPlaces holds capitalized words that commonly start sentences or name
// non-geographic things in travel chat.
var notPlaces = map[string]bool{
	"i": true, "what": true, "where": true, "when": true, "how": true, "why": true,
	"the": true, "this": true, "that": true, "there": true, "thanks": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"january": true, "february": true, "march": true, "april": true, "may": true,
	"june": true, "july": true, "august": true, "september": true,
	"october": true, "november": true, "december": true,
	"spring": true, "summer": true, "autumn": true, "fall": true, "winter": true,
	"instagram": true, "google": true, "airbnb": true, "uber": true,
	"ok": true, "okay": true, "hello": true, "hi": true, "hey": true,
	"can": true, "could": true, "should": true, "would": true, "will": true,
	"also": true, "maybe": true, "please": true, "tell": true, "and": true,
	"but": true, "yes": true, "no": true, "not": true, "just": true,
}

// interestKeywords maps canonical interest labels to the words that signal
// them. Accumulated into the session as a grow-only set.
var interestKeywords = map[string][]string{
	"photography":  {"photography", "photographer", "photos", "camera"},
	"landscapes":   {"landscape", "landscapes", "scenery", "scenic", "views"},
	"food":         {"food", "cuisine", "restaurant", "restaurants", "dining", "street food"},
	"museums":      {"museum", "museums", "gallery", "galleries", "art"},
	"history":      {"history", "historical", "ruins", "ancient"},
	"nature":       {"nature", "hiking", "mountains", "forest", "wildlife", "outdoors"},
	"beaches":      {"beach", "beaches", "snorkeling", "diving", "island"},
	"nightlife":    {"nightlife", "bars", "clubs", "party"},
	"shopping":     {"shopping", "markets", "souvenirs"},
	"architecture": {"architecture", "cathedral", "temple", "temples", "castles"},
	"family":       {"family", "kids", "children"},
	"romance":      {"romantic", "honeymoon", "anniversary"},
}

// Extract pulls a destination and interest keywords from raw text. It never
// fails; when nothing is recognizable both fields are zero.
func Extract(text string) Entities {
	var out Entities
	out.Destination = extractDestination(text)
	out.Interests = extractInterests(text)
	return out
}

func extractDestination(text string) string {
	for _, re := range destinationPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if isLikelyPlace(candidate) {
				return candidate
			}
		}
	}
	return ""
}

func isLikelyPlace(candidate string) bool {
	if len(candidate) < 3 {
		return false
	}
	// Every word of a multi-word candidate must pass the denylist, so
	// "Next Monday" and friends are dropped as a whole.
	for _, word := range strings.Fields(candidate) {
		if notPlaces[strings.ToLower(word)] {
			return false
		}
	}
	return true
}

func extractInterests(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for label, words := range interestKeywords {
		for _, w := range words {
			if containsWord(lower, w) {
				found = append(found, label)
				break
			}
		}
	}
	return found
}

// containsWord reports whether w appears in text on word boundaries, so
// "art" does not fire inside "particular".
func containsWord(text, w string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], w)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(w)
		beforeOK := start == 0 || !isLetter(text[start-1])
		afterOK := end == len(text) || !isLetter(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
