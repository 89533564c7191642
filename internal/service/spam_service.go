package service

import (
	"regexp"
	"strings"

	"github.com/halcyonworks/siteapi/internal/api/dto/v1/contact"
)

// SpamService scores submissions against a fixed battery of pattern checks.
// A positive verdict is an escalation signal, not a rejection: the caller
// switches the client to the strict rate-limit policy and the submission
// still proceeds if that policy has budget. False positives are accepted.
type SpamService struct {
	patterns   []*regexp.Regexp
	urlPattern *regexp.Regexp
}

// NewSpamService creates a spam service with the built-in rule set.
func NewSpamService() *SpamService {
	return &SpamService{
		patterns: []*regexp.Regexp{
			// pharmacy / spam-drug terms
			regexp.MustCompile(`(?i)\b(viagra|cialis|pharmacy|cheap pills|prescription drugs)\b`),
			// SEO / backlink spam
			regexp.MustCompile(`(?i)\b(seo services?|backlinks?|link building|search engine ranking|google ranking)\b`),
			// call-to-action link bait
			regexp.MustCompile(`(?i)(click here|visit our (web)?site|check out (our|my) (site|page))`),
			// get-rich-quick
			regexp.MustCompile(`(?i)(make money fast|work from home|earn \$|get rich|guaranteed income|passive income)`),
			// lottery / prize
			regexp.MustCompile(`(?i)\b(lottery|you (have )?won|claim your prize|congratulations.{0,20}winner)\b`),
			// 5+ consecutive symbol characters
			regexp.MustCompile(`[!@#$%^&*()=+\[\]{}<>|\\/?~]{5,}`),
			// bot / crawler keywords
			regexp.MustCompile(`(?i)\b(bot|crawler|spider|testing|test)\b`),
		},
		urlPattern: regexp.MustCompile(`https?://`),
	}
}

// Message bounds checked by the heuristic. These are deliberately looser
// than the validator's own limits so the heuristic still guards entry paths
// that bypass validation.
const (
	spamMessageMinLen = 10
	spamMessageMaxLen = 5000
	shoutingMinLen    = 50
	maxURLCount       = 1
	maxCharRun        = 10
)

// IsSuspicious reports whether the submission trips any detection rule.
func (s *SpamService) IsSuspicious(sub contact.Submission) bool {
	if len(sub.Message) < spamMessageMinLen || len(sub.Message) > spamMessageMaxLen {
		return true
	}

	if isShouting(sub.Message) {
		return true
	}

	for _, field := range []string{sub.Message, sub.FullName(), sub.Company} {
		if s.fieldSuspicious(field) {
			return true
		}
	}

	return false
}

func (s *SpamService) fieldSuspicious(field string) bool {
	if field == "" {
		return false
	}

	if len(s.urlPattern.FindAllStringIndex(field, -1)) > maxURLCount {
		return true
	}

	if hasLongRun(field, maxCharRun) {
		return true
	}

	for _, re := range s.patterns {
		if re.MatchString(field) {
			return true
		}
	}

	return false
}

// isShouting reports whether a long message is entirely upper-case.
func isShouting(message string) bool {
	if len(message) <= shoutingMinLen {
		return false
	}
	// Require at least one letter so digit/symbol-only text doesn't count.
	if message == strings.ToLower(message) {
		return false
	}
	return message == strings.ToUpper(message)
}

// hasLongRun reports whether any character repeats n or more times
// consecutively. RE2 has no backreferences, so this is a plain scan.
func hasLongRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
