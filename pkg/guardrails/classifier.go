package guardrails

import (
	"strings"
)

// Kind is the coarse category a question falls into before retrieval runs.
type Kind int

const (
	KindImmigration Kind = iota
	KindGreeting
	KindOffTopic
)

var greetingWords = map[string]bool{
	"hi":           true,
	"hello":        true,
	"hey":          true,
	"greetings":    true,
	"hi there":     true,
	"hello there":  true,
	"good morning": true,
	"good evening": true,
}

var immigrationKeywords = []string{
	"visa", "immigration", "immigrant", "green card", "citizenship",
	"naturalization", "passport", "uscis", "sevis", "petition",
	"i-20", "i20", "i-129", "i129", "i-485", "i485", "ds-160", "ds160",
	"ead", "work permit", "h1b", "h-1b", "h2b", "h-2b", "f1", "f-1",
	"j1", "j-1", "o1", "o-1", "l1", "l-1", "b1", "b-1", "b2", "b-2",
	"eb1", "eb-1", "eb2", "eb-2", "eb3", "eb-3",
	"status", "application", "permanent resident", "alien",
	"foreign national",
}

// Classifier applies keyword guardrails so pure greetings and clearly
// unrelated questions never reach the upstream services.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Classify(question string) Kind {
	normalized := normalize(question)

	if greetingWords[normalized] {
		return KindGreeting
	}

	for _, keyword := range immigrationKeywords {
		if strings.Contains(normalized, keyword) {
			return KindImmigration
		}
	}

	return KindOffTopic
}

func normalize(question string) string {
	s := strings.ToLower(strings.TrimSpace(question))
	return strings.TrimRight(s, "!?. ")
}
