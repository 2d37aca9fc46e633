// README: Classifier unit tests covering priority order, confidence bounds, and fallbacks.
package intent

import "testing"

func TestClassify_EmptyInput(t *testing.T) {
	c := NewDefaultClassifier()
	for _, in := range []string{"", "   ", "\t\n  "} {
		res := c.Classify(in)
		if res.Category != Unclassified {
			t.Errorf("input %q: expected Unclassified, got %s", in, res.Category)
		}
		if res.Confidence != 0 {
			t.Errorf("input %q: expected confidence 0, got %f", in, res.Confidence)
		}
	}
}

func TestClassify_Gibberish(t *testing.T) {
	c := NewDefaultClassifier()
	res := c.Classify("asdkjh qwe")
	if res.Category != Unclassified || res.Confidence != 0 {
		t.Fatalf("expected Unclassified/0, got %s/%f", res.Category, res.Confidence)
	}
}

func TestClassify_WeatherScenario(t *testing.T) {
	c := NewDefaultClassifier()
	res := c.Classify("What's the weather in Tokyo in spring?")
	if res.Category != WeatherCheck {
		t.Fatalf("expected WeatherCheck, got %s", res.Category)
	}
	if res.Confidence < 0.6 {
		t.Errorf("expected confidence >= 0.6, got %f", res.Confidence)
	}
}

func TestClassify_WeatherPatternsAlwaysPositiveConfidence(t *testing.T) {
	c := NewDefaultClassifier()
	inputs := []string{
		"weather in Lisbon",
		"how humid is it",
		"is it rainy there in november",
		"what's the forecast",
	}
	for _, in := range inputs {
		res := c.Classify(in)
		if res.Category != WeatherCheck {
			t.Errorf("input %q: expected WeatherCheck, got %s", in, res.Category)
		}
		if res.Confidence <= 0 {
			t.Errorf("input %q: expected confidence > 0, got %f", in, res.Confidence)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewDefaultClassifier()
	const msg = "any hidden gems or museums worth a day trip?"
	first := c.Classify(msg)
	for i := 0; i < 5; i++ {
		if got := c.Classify(msg); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// "weather" (WeatherCheck) and "pack" (PackingHelp) both match a single
	// rule; WeatherCheck is declared earlier and must win.
	c := NewDefaultClassifier()
	res := c.Classify("weather means I should pack differently")
	if res.Category != WeatherCheck {
		t.Fatalf("expected WeatherCheck by priority, got %s", res.Category)
	}
}

func TestClassify_Categories(t *testing.T) {
	c := NewDefaultClassifier()
	tests := []struct {
		msg  string
		want Category
	}{
		{"which country should I pick for my honeymoon", DestinationInquiry},
		{"what should I pack for two weeks", PackingHelp},
		{"tell me about local customs and etiquette", CulturalInfo},
		{"things to do near the old town", ActivityRequest},
		{"is it expensive? what's a daily budget", BudgetPlanning},
		{"do I need a visa and a sim card", PracticalAdvice},
	}
	for _, tc := range tests {
		res := c.Classify(tc.msg)
		if res.Category != tc.want {
			t.Errorf("%q: expected %s, got %s", tc.msg, tc.want, res.Category)
		}
		if res.Confidence <= 0 || res.Confidence > 1 {
			t.Errorf("%q: confidence out of range: %f", tc.msg, res.Confidence)
		}
	}
}

func TestClassify_ConfidenceMonotonicInWeight(t *testing.T) {
	c := NewDefaultClassifier()
	one := c.Classify("climate")                              // single keyword
	many := c.Classify("weather in Oslo, climate in january") // phrase + keywords
	if one.Category != WeatherCheck || many.Category != WeatherCheck {
		t.Fatalf("setup: expected WeatherCheck for both")
	}
	if many.Confidence <= one.Confidence {
		t.Errorf("expected more matches to score higher: %f <= %f", many.Confidence, one.Confidence)
	}
}

func TestNewClassifier_RejectsBadRules(t *testing.T) {
	if _, err := NewClassifier([]CategoryRules{{WeatherCheck, []Rule{{`(`, 1}}}}); err == nil {
		t.Error("expected error for invalid pattern")
	}
	if _, err := NewClassifier([]CategoryRules{{WeatherCheck, []Rule{{`ok`, 0}}}}); err == nil {
		t.Error("expected error for zero weight")
	}
}
