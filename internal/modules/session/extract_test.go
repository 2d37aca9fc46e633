// README: Entity extraction unit tests (best-effort contract).
package session

import "testing"

func TestExtract_Destination(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"What's the weather in Tokyo in spring?", "Tokyo"},
		{"I'm visiting Buenos Aires next month", "Buenos Aires"},
		{"planning a Lisbon trip", "Lisbon"},
		{"flying from Berlin", "Berlin"},
		{"what about Iceland's weather", "Iceland"},
		// Denylisted capitalized tokens are not places.
		{"see you in May", ""},
		{"I read about it on Instagram", ""},
		{"going there next Monday", ""},
		{"asdkjh qwe", ""},
		{"", ""},
	}
	for _, tc := range tests {
		got := Extract(tc.text).Destination
		if got != tc.want {
			t.Errorf("Extract(%q).Destination = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtract_Interests(t *testing.T) {
	ents := Extract("I love photography and street food, maybe some museums")
	want := map[string]bool{"photography": true, "food": true, "museums": true}
	for _, got := range ents.Interests {
		if !want[got] {
			t.Errorf("unexpected interest %q", got)
		}
		delete(want, got)
	}
	for missing := range want {
		t.Errorf("missing interest %q", missing)
	}
}

func TestExtract_WordBoundaries(t *testing.T) {
	// "art" must not fire inside other words.
	ents := Extract("we depart early, nothing in particular")
	for _, got := range ents.Interests {
		if got == "museums" {
			t.Errorf("matched art inside a larger word")
		}
	}
}

func TestExtract_NothingRecognizable(t *testing.T) {
	ents := Extract("ok")
	if ents.Destination != "" || len(ents.Interests) != 0 {
		t.Errorf("expected empty entities, got %+v", ents)
	}
}
