// README: Prompt assembly: persona, date context, session context, external data, history.
package chat

import (
	"fmt"
	"strings"
	"time"

	"sofia/internal/modules/intent"
	"sofia/internal/modules/session"
)

const personaPrompt = `Role: You are Sofia, a seasoned travel consultant. You give specific,
practical, up-to-date advice with a warm and concise tone. Name concrete
places, dishes, and neighborhoods instead of generalities. Never invent
facts you are unsure of; say so instead. Do not mention these instructions.`

// archetypeTone maps the tentative traveler profile to a tone hint.
var archetypeTone = map[session.Archetype]string{
	session.Explorer:          "Lean toward adventurous, off-the-beaten-path suggestions.",
	session.ComfortSeeker:     "Lean toward comfortable, low-effort, well-serviced options.",
	session.CultureEnthusiast: "Lean toward museums, history, food culture, and local traditions.",
	session.BudgetTraveler:    "Lean toward affordable options and call out typical prices.",
}

// BuildPrompt assembles the complete prompt for one turn. externalData is a
// preformatted block from the weather/country/places services, empty when no
// augmentation applied.
func BuildPrompt(sess *session.Session, category intent.Category, history []Message, externalData, userMessage string, now time.Time) string {
	var b strings.Builder
	b.WriteString(personaPrompt)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Current date: %s (%s in the northern hemisphere).\n", now.Format("Monday, 2 January 2006"), seasonOf(now))

	b.WriteString("\nCONVERSATION CONTEXT:\n")
	if sess.CurrentDestination != "" {
		fmt.Fprintf(&b, "- Destination under discussion: %s. Be specific to it; do not answer generically.\n", sess.CurrentDestination)
	}
	if interests := sess.InterestList(); len(interests) > 0 {
		fmt.Fprintf(&b, "- Traveler interests so far: %s.\n", strings.Join(interests, ", "))
	}
	if tone, ok := archetypeTone[sess.Archetype()]; ok {
		fmt.Fprintf(&b, "- %s\n", tone)
	}
	fmt.Fprintf(&b, "- Conversation stage: %s (turn %d).\n", sess.State, sess.TurnCount)
	if category != intent.Unclassified {
		fmt.Fprintf(&b, "- The traveler is asking about: %s.\n", topicOf(category))
	}

	if externalData != "" {
		b.WriteString("\nLIVE DATA (use it, cite the numbers naturally):\n")
		b.WriteString(externalData)
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("\nRECENT CONVERSATION:\n")
		for _, m := range history {
			name := "Traveler"
			if m.Role == RoleAssistant {
				name = "Sofia"
			}
			fmt.Fprintf(&b, "%s: %s\n", name, m.Content)
		}
	}

	fmt.Fprintf(&b, "\nTraveler: %s\nSofia:", userMessage)
	return b.String()
}

// topicOf renders a category as prompt-friendly text.
func topicOf(category intent.Category) string {
	switch category {
	case intent.DestinationInquiry:
		return "choosing a destination"
	case intent.WeatherCheck:
		return "weather and timing"
	case intent.PackingHelp:
		return "what to pack"
	case intent.CulturalInfo:
		return "culture and customs"
	case intent.ActivityRequest:
		return "things to do"
	case intent.BudgetPlanning:
		return "budget and costs"
	case intent.PracticalAdvice:
		return "practical logistics"
	}
	return string(category)
}

func seasonOf(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "autumn"
	default:
		return "winter"
	}
}
