// README: Default classification rule table for the travel domain.
package intent

// Rule is one textual pattern belonging to a category. Patterns are matched
// case-insensitively against the whole message. Weight encodes specificity:
// multi-token phrases carry weight 2, single keywords weight 1.
type Rule struct {
	Pattern string
	Weight  int
}

// DefaultRules returns the built-in rule table, ordered by category priority.
// Callers may build their own table; the classifier treats whatever it is
// given as immutable.
func DefaultRules() []CategoryRules {
	return []CategoryRules{
		{DestinationInquiry, []Rule{
			{`\b(where should (i|we) go|travel to|fly to|head(ing)? to)\b`, 2},
			{`\b(recommend|suggest)\w*\b.*\b(place|destination|country|city|spot)\b`, 2},
			{`\b(which|what)\s+(country|city|place|destination)\b`, 2},
			{`\b(thinking about|planning|considering)\b.*\b(trip|visit|vacation|journey)\b`, 2},
			{`\bworth visiting\b`, 2},
			{`\bdestination\b`, 1},
			{`\b(never been|always wanted to (go|visit))\b`, 2},
		}},
		{WeatherCheck, []Rule{
			{`\bweather in\b`, 2},
			{`\bweather\b`, 1},
			{`\b(temperature|climate|forecast|humid(ity)?)\b`, 1},
			{`\b(rainy|sunny|snowy|windy)\b`, 1},
			{`\bbest time to (visit|go|travel)\b`, 2},
			{`\b(rainy season|dry season|monsoon)\b`, 2},
			{`\b(spring|summer|autumn|fall|winter)\b`, 1},
			{`\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`, 1},
		}},
		{PackingHelp, []Rule{
			{`\bwhat (should i|to) (pack|bring|wear)\b`, 2},
			{`\bpacking list\b`, 2},
			{`\b(pack|packing)\b`, 1},
			{`\b(luggage|suitcase|backpack|carry.?on)\b`, 1},
			{`\b(essentials|must.?bring)\b`, 1},
		}},
		{CulturalInfo, []Rule{
			{`\blocal customs\b`, 2},
			{`\bdress code\b`, 2},
			{`\b(culture|cultural|customs|traditions|etiquette)\b`, 1},
			{`\b(language|religion|festivals|heritage)\b`, 1},
			{`\b(taboo|offensive|polite|respectful)\b`, 1},
			{`\bhow (do|should) locals\b`, 2},
		}},
		{ActivityRequest, []Rule{
			{`\bthings to (do|see)\b`, 2},
			{`\bwhat (can|should) (i|we) (do|see)\b`, 2},
			{`\b(must.?see|must.?do|bucket list)\b`, 2},
			{`\bhidden gems\b`, 2},
			{`\bday trips?\b`, 2},
			{`\b(attractions|sightseeing|activities|itinerary)\b`, 1},
			{`\b(museums?|galleries|nightlife|hiking|beaches|snorkel(ing)?)\b`, 1},
		}},
		{BudgetPlanning, []Rule{
			{`\bhow much\b.*\b(cost|spend|money)\b`, 2},
			{`\b(per day|daily cost|daily budget|total cost)\b`, 2},
			{`\b(save money|shoestring|splurge|break the bank)\b`, 2},
			{`\b(budget|cheap|affordable|expensive|pricey|overpriced)\b`, 1},
			{`\b(cost|costs|prices?)\b`, 1},
		}},
		{PracticalAdvice, []Rule{
			{`\b(sim card|exchange rate|travel insurance)\b`, 2},
			{`\bgetting around\b`, 2},
			{`\bwhere to stay\b`, 2},
			{`\b(visa|passport|vaccinations?|embassy)\b`, 1},
			{`\b(safety|safe|scams?|pickpockets?|crime)\b`, 1},
			{`\b(currency|atm|wifi|roaming|adapter)\b`, 1},
			{`\b(airport|trains?|buses|metro|taxi)\b`, 1},
			{`\b(hotels?|hostels?|accommodation)\b`, 1},
		}},
	}
}
