// README: Canned per-category replies used when the LLM is unavailable.
package chat

import "sofia/internal/modules/intent"

// fallbackReplies keeps the conversation alive when generation fails. They
// ask a question back so the next turn can still make progress.
var fallbackReplies = map[intent.Category]string{
	intent.DestinationInquiry: "I'm having trouble reaching my sources right now. While I reconnect, what kind of trip are you picturing: city, coast, or countryside?",
	intent.WeatherCheck:       "I can't pull live weather at the moment. If you tell me the month you're traveling, I can still talk through what's typical for that season.",
	intent.PackingHelp:        "I lost my notes for a second there. As a rule of thumb: layers, one pair of comfortable walking shoes, and copies of your documents. What climate are you heading into?",
	intent.CulturalInfo:       "I can't fetch the details right now, but I'd love to help with customs and etiquette. Which country are you asking about?",
	intent.ActivityRequest:    "My recommendations engine is briefly offline. Tell me what you enjoy most (food, museums, the outdoors) and I'll tailor suggestions in a moment.",
	intent.BudgetPlanning:     "I can't crunch numbers right now. Roughly how long is the trip and are you thinking hostel, mid-range, or treat-yourself?",
	intent.PracticalAdvice:    "I'm momentarily unable to check the specifics. For visas and safety advisories, your government's travel site is the authoritative source, and you can ask me again in a bit.",
}

const genericFallback = "Sorry, I hit a snag on my end. Could you say that again in a moment?"

// fallbackFor returns a canned reply for the category.
func fallbackFor(category intent.Category) string {
	if reply, ok := fallbackReplies[category]; ok {
		return reply
	}
	return genericFallback
}
