package guardrails

import "regexp"

// Questions are logged server-side; anything resembling PII is masked first.
var piiPatterns = map[string]*regexp.Regexp{
	"EMAIL":    regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	"PHONE":    regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	"SSN":      regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	"PASSPORT": regexp.MustCompile(`\b[A-Z]\d{8}\b`),
}

func MaskPII(text string) string {
	masked := text
	for label, pattern := range piiPatterns {
		masked = pattern.ReplaceAllString(masked, "[MASKED_"+label+"]")
	}
	return masked
}
