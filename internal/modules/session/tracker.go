// README: Context tracker: per-turn session mutation (state latch, interests, archetypes).
package session

import (
	"strings"
	"time"

	"sofia/internal/modules/intent"
)

// archetypeKeywords maps each archetype to keyword deltas applied whenever a
// keyword appears in a turn. Scores only accumulate; there is no decay.
var archetypeKeywords = map[Archetype]map[string]int{
	Explorer: {
		"adventure": 2, "explore": 2, "remote": 2, "trek": 2, "trekking": 2,
		"hiking": 1, "landscape": 1, "landscapes": 1, "photography": 1,
		"wild": 1, "off the beaten": 3,
	},
	ComfortSeeker: {
		"resort": 2, "spa": 2, "relax": 2, "relaxing": 2, "comfortable": 2,
		"luxury": 2, "all-inclusive": 3, "pool": 1, "quiet": 1, "easy": 1,
	},
	CultureEnthusiast: {
		"museum": 2, "museums": 2, "history": 2, "culture": 2, "art": 1,
		"architecture": 2, "local": 1, "authentic": 2, "traditions": 2,
	},
	BudgetTraveler: {
		"budget": 2, "cheap": 2, "affordable": 2, "hostel": 2, "backpacking": 3,
		"save": 1, "deal": 1, "shoestring": 3,
	},
}

// transitions lists the forward moves. A category missing from the current
// state's row holds the state; Unclassified never advances. There is no
// regression path: ambiguous input leaves the stage where it is.
var transitions = map[State]map[intent.Category]State{
	StateGreeting: {
		intent.DestinationInquiry: StatePlanning,
		intent.WeatherCheck:       StatePlanning,
		intent.ActivityRequest:    StatePlanning,
		intent.CulturalInfo:       StatePlanning,
		intent.PackingHelp:        StatePlanning,
		intent.BudgetPlanning:     StatePlanning,
		intent.PracticalAdvice:    StatePlanning,
	},
	StatePlanning: {
		intent.WeatherCheck:    StateDetails,
		intent.ActivityRequest: StateDetails,
		intent.CulturalInfo:    StateDetails,
		intent.PackingHelp:     StateDetails,
	},
	StateDetails: {
		intent.BudgetPlanning:  StateBooking,
		intent.PracticalAdvice: StateBooking,
	},
	StateBooking: {
		intent.PackingHelp:     StateFollowUp,
		intent.PracticalAdvice: StateFollowUp,
	},
}

// Tracker applies one classified turn to a session. It is stateless; all
// accumulated context lives in the Session. Callers must hold exclusive
// access to the session (see Service).
type Tracker struct{}

// NewTracker returns a Tracker.
func NewTracker() *Tracker { return &Tracker{} }

// Update mutates sess for one processed message and returns it.
// Guarantees, in order:
//   - TurnCount increases by exactly 1, always.
//   - CurrentDestination is overwritten only when extraction produced one.
//   - Interests grow by set union, never shrink.
//   - Archetype scores get keyword deltas added, never reset.
//   - State advances per the transition table or stays put.
//
// Extraction misses are silent no-ops for their field. Update cannot fail.
func (t *Tracker) Update(sess *Session, category intent.Category, ents Entities, rawText string) *Session {
	sess.TurnCount++

	if ents.Destination != "" {
		sess.CurrentDestination = ents.Destination
	}
	for _, interest := range ents.Interests {
		sess.Interests[interest] = true
	}

	scoreArchetypes(sess, rawText)

	if next, ok := transitions[sess.State][category]; ok && next.rank() > sess.State.rank() {
		sess.State = next
	}

	sess.UpdatedAt = time.Now().UTC()
	return sess
}

func scoreArchetypes(sess *Session, rawText string) {
	lower := strings.ToLower(rawText)
	for archetype, table := range archetypeKeywords {
		for keyword, delta := range table {
			if containsWord(lower, keyword) {
				sess.ArchetypeScores[archetype] += delta
			}
		}
	}
}
