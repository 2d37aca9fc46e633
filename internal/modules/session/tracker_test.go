// README: Tracker unit tests covering turn counting, monotonic context, and the state latch.
package session

import (
	"testing"

	"sofia/internal/modules/intent"
)

func applyTurn(t *testing.T, tr *Tracker, sess *Session, category intent.Category, text string) {
	t.Helper()
	tr.Update(sess, category, Extract(text), text)
}

func TestUpdate_TurnCountIncrementsByOne(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")
	msgs := []string{"hi", "asdkjh qwe", "weather in Tokyo", ""}
	for i, msg := range msgs {
		tr.Update(sess, intent.Unclassified, Extract(msg), msg)
		if sess.TurnCount != i+1 {
			t.Fatalf("after %d turns: TurnCount = %d", i+1, sess.TurnCount)
		}
	}
}

func TestUpdate_InterestsGrowOnly(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")
	applyTurn(t, tr, sess, intent.Unclassified, "I love photography")
	if !sess.Interests["photography"] {
		t.Fatalf("expected photography interest, got %v", sess.InterestList())
	}
	applyTurn(t, tr, sess, intent.Unclassified, "somewhere with great landscapes")
	if !sess.Interests["photography"] || !sess.Interests["landscapes"] {
		t.Errorf("interests must accumulate, got %v", sess.InterestList())
	}
	if sess.ArchetypeScores[Explorer] < 1 {
		t.Errorf("expected Explorer score to increase, got %d", sess.ArchetypeScores[Explorer])
	}

	before := len(sess.Interests)
	applyTurn(t, tr, sess, intent.Unclassified, "asdkjh qwe")
	if len(sess.Interests) < before {
		t.Errorf("interests shrank: %d -> %d", before, len(sess.Interests))
	}
}

func TestUpdate_GibberishChangesOnlyTurnCount(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")
	applyTurn(t, tr, sess, intent.WeatherCheck, "What's the weather in Tokyo in spring?")

	snapshot := *sess
	applyTurn(t, tr, sess, intent.Unclassified, "asdkjh qwe")

	if sess.TurnCount != snapshot.TurnCount+1 {
		t.Errorf("TurnCount = %d, want %d", sess.TurnCount, snapshot.TurnCount+1)
	}
	if sess.CurrentDestination != snapshot.CurrentDestination {
		t.Errorf("destination changed: %q -> %q", snapshot.CurrentDestination, sess.CurrentDestination)
	}
	if sess.State != snapshot.State {
		t.Errorf("state changed: %s -> %s", snapshot.State, sess.State)
	}
	if len(sess.Interests) != len(snapshot.Interests) {
		t.Errorf("interests changed: %v", sess.InterestList())
	}
}

func TestUpdate_DestinationOverwrites(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")
	applyTurn(t, tr, sess, intent.WeatherCheck, "weather in Tokyo please")
	if sess.CurrentDestination != "Tokyo" {
		t.Fatalf("expected Tokyo, got %q", sess.CurrentDestination)
	}
	applyTurn(t, tr, sess, intent.DestinationInquiry, "actually, thinking of visiting Lisbon instead")
	if sess.CurrentDestination != "Lisbon" {
		t.Errorf("expected overwrite to Lisbon, got %q", sess.CurrentDestination)
	}
	// No new mention keeps the last destination.
	applyTurn(t, tr, sess, intent.ActivityRequest, "things to do there")
	if sess.CurrentDestination != "Lisbon" {
		t.Errorf("destination should persist without a new mention, got %q", sess.CurrentDestination)
	}
}

func TestUpdate_StateAdvancesForward(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")

	applyTurn(t, tr, sess, intent.DestinationInquiry, "where should we go in May?")
	if sess.State != StatePlanning {
		t.Fatalf("after inquiry: state = %s, want planning", sess.State)
	}
	applyTurn(t, tr, sess, intent.ActivityRequest, "things to do in Rome")
	if sess.State != StateDetails {
		t.Fatalf("after activity: state = %s, want details", sess.State)
	}
	applyTurn(t, tr, sess, intent.PracticalAdvice, "do I need a visa?")
	if sess.State != StateBooking {
		t.Fatalf("after practical: state = %s, want booking", sess.State)
	}
}

func TestUpdate_StateNeverRegresses(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")
	sess.State = StateBooking

	probes := []struct {
		category intent.Category
		text     string
	}{
		{intent.DestinationInquiry, "which country should I pick?"},
		{intent.Unclassified, "asdkjh qwe"},
		{intent.WeatherCheck, "weather in Oslo"},
		{intent.BudgetPlanning, "how much does it cost?"},
	}
	for _, p := range probes {
		applyTurn(t, tr, sess, p.category, p.text)
		if sess.State.rank() < StateBooking.rank() {
			t.Fatalf("state regressed to %s after %q", sess.State, p.text)
		}
	}
}

func TestUpdate_UnclassifiedNeverAdvancesState(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")
	applyTurn(t, tr, sess, intent.Unclassified, "hmm")
	if sess.State != StateGreeting {
		t.Errorf("unclassified advanced state to %s", sess.State)
	}
}

func TestUpdate_ArchetypeScoresOnlyIncrease(t *testing.T) {
	tr := NewTracker()
	sess := New("s1")
	applyTurn(t, tr, sess, intent.Unclassified, "I want a luxury resort with a spa")
	comfort := sess.ArchetypeScores[ComfortSeeker]
	if comfort == 0 {
		t.Fatal("expected ComfortSeeker score > 0")
	}
	applyTurn(t, tr, sess, intent.Unclassified, "also somewhere cheap, hostels are fine")
	if sess.ArchetypeScores[ComfortSeeker] < comfort {
		t.Errorf("ComfortSeeker score decreased: %d -> %d", comfort, sess.ArchetypeScores[ComfortSeeker])
	}
	if sess.ArchetypeScores[BudgetTraveler] == 0 {
		t.Errorf("expected BudgetTraveler score > 0")
	}
}

func TestArchetype_Accessor(t *testing.T) {
	sess := New("s1")
	if got := sess.Archetype(); got != "" {
		t.Fatalf("empty session should have no archetype, got %s", got)
	}
	sess.ArchetypeScores[BudgetTraveler] = 3
	sess.ArchetypeScores[Explorer] = 3
	// Tie resolved by fixed order: Explorer is declared first.
	if got := sess.Archetype(); got != Explorer {
		t.Errorf("tie-break: got %s, want %s", got, Explorer)
	}
	sess.ArchetypeScores[BudgetTraveler] = 5
	if got := sess.Archetype(); got != BudgetTraveler {
		t.Errorf("got %s, want %s", got, BudgetTraveler)
	}
}
