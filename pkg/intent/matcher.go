// Package intent maps free-form user text to canned replies using an ordered
// table of trigger phrases.
package intent

import (
	"strings"
	"time"
)

// DefaultFallback is returned when no rule matches.
const DefaultFallback = "Hmm, I didn’t quite catch that. Try rephrasing?"

// TimeLayout is the layout used by the time/date reply.
const TimeLayout = "2006-01-02 15:04"

// Response is either a fixed string or a function evaluated on every match.
type Response struct {
	text    string
	compute func() string
}

// Static returns a Response that always yields text.
func Static(text string) Response {
	return Response{text: text}
}

// Computed returns a Response produced by fn each time it is resolved.
func Computed(fn func() string) Response {
	return Response{compute: fn}
}

// Resolve returns the reply text.
func (r Response) Resolve() string {
	if r.compute != nil {
		return r.compute()
	}
	return r.text
}

// Rule pairs a set of lowercase trigger phrases with a response.
type Rule struct {
	Phrases  []string
	Response Response
}

// matches reports whether any phrase occurs in the normalized input.
func (r Rule) matches(normalized string) bool {
	for _, phrase := range r.Phrases {
		if phrase != "" && strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

// Matcher returns the response of the first rule whose phrase appears in the input.
type Matcher struct {
	rules    []Rule
	fallback string
}

// NewMatcher creates a matcher over rules, evaluated in the given order.
// Phrases are lowercased so they compare against normalized input.
func NewMatcher(rules []Rule, fallback string) *Matcher {
	copied := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		phrases := make([]string, 0, len(rule.Phrases))
		for _, phrase := range rule.Phrases {
			phrases = append(phrases, strings.ToLower(phrase))
		}
		copied = append(copied, Rule{Phrases: phrases, Response: rule.Response})
	}
	return &Matcher{rules: copied, fallback: fallback}
}

// NewDefaultMatcher returns the built-in rule set, reading time from now.
func NewDefaultMatcher(now func() time.Time) *Matcher {
	return NewMatcher(DefaultRules(now), DefaultFallback)
}

// DefaultRules returns the built-in rule table. Order is priority.
func DefaultRules(now func() time.Time) []Rule {
	if now == nil {
		now = time.Now
	}
	return []Rule{
		{
			Phrases:  []string{"hello", "hi", "hey"},
			Response: Static("Hello! How can I help you today?"),
		},
		{
			Phrases:  []string{"how are", "how’s it going"},
			Response: Static("I’m doing great! What can I do for you?"),
		},
		{
			Phrases:  []string{"your name", "who are you"},
			Response: Static("I’m a terminal chatbot with a sleek dark UI."),
		},
		{
			Phrases: []string{"time", "date"},
			Response: Computed(func() string {
				return "It’s " + now().Format(TimeLayout)
			}),
		},
		{
			Phrases:  []string{"bye", "goodbye", "exit"},
			Response: Static("See you later!"),
		},
	}
}

// Match returns the reply for input. It never fails; unmatched input gets
// the fallback.
func (m *Matcher) Match(input string) string {
	normalized := Normalize(input)
	for _, rule := range m.rules {
		if rule.matches(normalized) {
			return rule.Response.Resolve()
		}
	}
	return m.fallback
}

// Fallback returns the reply used when nothing matches.
func (m *Matcher) Fallback() string {
	return m.fallback
}

// Normalize lowercases and trims input.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
