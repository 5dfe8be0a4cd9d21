package matcher

import "regexp"

// SmallTalkRule answers a conversational message without touching the corpus.
type SmallTalkRule struct {
	Intent  Intent
	Pattern *regexp.Regexp
	Answer  string
}

// smallTalkRules are evaluated in order and the first match wins. Greetings
// are anchored at the start of the message and are checked before closings.
// Acknowledgements may appear anywhere; farewells and words with another
// everyday meaning ("vale" is also the verb for price) only count as the
// whole message.
var smallTalkRules = []SmallTalkRule{
	{
		Intent:  IntentGreeting,
		Pattern: regexp.MustCompile(`^(hola|buenas|buenos dias|buen dia|buenas tardes|buenas noches|saludos)\b`),
		Answer:  GreetingMessage,
	},
	{
		Intent:  IntentClosing,
		Pattern: regexp.MustCompile(`\b(gracias|ok|listo|perfecto)\b`),
		Answer:  ClosingMessage,
	},
	{
		Intent:  IntentClosing,
		Pattern: regexp.MustCompile(`^(okay|vale|genial|adios|chao|hasta luego)$`),
		Answer:  ClosingMessage,
	},
}

// DetectSmallTalk matches normalized text against the small-talk rules.
func DetectSmallTalk(normalized string) (Response, bool) {
	for _, rule := range smallTalkRules {
		if rule.Pattern.MatchString(normalized) {
			return Response{
				Answer:      rule.Answer,
				Intent:      rule.Intent,
				Confidence:  1.0,
				Suggestions: []string{},
			}, true
		}
	}
	return Response{}, false
}
