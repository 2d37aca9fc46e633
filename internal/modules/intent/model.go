// README: Intent categories and classification result types.
package intent

// Category is the classified purpose of a single user message.
//
// The declaration order below is the classifier's priority order and is part
// of the public contract: when a message matches rules from more than one
// category, the category declared first wins.
type Category string

const (
	DestinationInquiry Category = "destination_inquiry"
	WeatherCheck       Category = "weather_check"
	PackingHelp        Category = "packing_help"
	CulturalInfo       Category = "cultural_info"
	ActivityRequest    Category = "activity_request"
	BudgetPlanning     Category = "budget_planning"
	PracticalAdvice    Category = "practical_advice"

	// Unclassified is the fallback when no rule matches. It is a valid
	// classification outcome, not an error.
	Unclassified Category = "unclassified"
)

// Categories lists all classifiable categories in priority order.
// Unclassified is excluded; it is never matched, only fallen back to.
var Categories = []Category{
	DestinationInquiry,
	WeatherCheck,
	PackingHelp,
	CulturalInfo,
	ActivityRequest,
	BudgetPlanning,
	PracticalAdvice,
}

// Result is the classifier output for one message.
type Result struct {
	Category Category `json:"category"`
	// Confidence is in [0,1]. It grows with the number and specificity of
	// matched rules and is 0 exactly when Category is Unclassified.
	Confidence float64 `json:"confidence"`
	// Matched is the number of rules that matched within the winning category.
	Matched int `json:"matched"`
}
