package service

import (
	"strings"
	"testing"

	"github.com/halcyonworks/siteapi/internal/api/dto/v1/contact"
)

func cleanSubmission() contact.Submission {
	return contact.Submission{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Message:   "Hello, I need help with AI strategy for my team.",
	}
}

func TestIsSuspiciousMessages(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		suspicious bool
	}{
		{"clean inquiry", "Hello, I need help with AI strategy for my company.", false},
		{"single url ok", "Our product lives at https://example.com and needs a security review.", false},
		{"two urls", "See https://a.example.com and https://b.example.com for details.", true},
		{"pharmacy", "We sell cheap viagra online, best prices around here.", true},
		{"seo spam", "We offer the best SEO services and backlinks for your website ranking.", true},
		{"click here", "Click here to improve your business instantly today.", true},
		{"get rich quick", "Make money fast with this one weird opportunity for you.", true},
		{"lottery", "Congratulations, you won the international lottery grand draw.", true},
		{"symbol run", "Great offer!!! $$$$$$ waiting for you right now.", true},
		{"repeated chars", "Helloooooooooo, I want to talk about something.", true},
		{"crawler keyword", "This crawler found your site in our index yesterday.", true},
		{"too short", "Hi there!", true},
		{"too long", strings.Repeat("a long message ", 400), true},
		{"shouting", "I AM VERY INTERESTED IN YOUR CONSULTING SERVICES RIGHT NOW PLEASE CALL", true},
		{"short caps ok", "HELP ME PLEASE with migration", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpamService()
			sub := cleanSubmission()
			sub.Message = tt.message
			if got := s.IsSuspicious(sub); got != tt.suspicious {
				t.Errorf("IsSuspicious(%q) = %v, want %v", tt.message, got, tt.suspicious)
			}
		})
	}
}

func TestIsSuspiciousChecksNameAndCompany(t *testing.T) {
	s := NewSpamService()

	sub := cleanSubmission()
	sub.Company = "Best SEO Services"
	if !s.IsSuspicious(sub) {
		t.Error("spam phrase in company not flagged")
	}

	sub = cleanSubmission()
	sub.FirstName = "Spider"
	if !s.IsSuspicious(sub) {
		t.Error("crawler keyword in name not flagged")
	}

	sub = cleanSubmission()
	sub.Company = "Acme Consulting"
	if s.IsSuspicious(sub) {
		t.Error("clean company flagged")
	}
}

func TestHasLongRun(t *testing.T) {
	if hasLongRun("abcdefghij", 10) {
		t.Error("distinct characters flagged as a run")
	}
	if !hasLongRun("aaaaaaaaaa", 10) {
		t.Error("10-char run not detected")
	}
	if hasLongRun("aaaaaaaaa", 10) {
		t.Error("9-char run detected as 10")
	}
}

func TestIsShouting(t *testing.T) {
	if isShouting("OK") {
		t.Error("short caps flagged")
	}
	if isShouting(strings.Repeat("1234567890", 6)) {
		t.Error("letterless text flagged")
	}
	if !isShouting("PLEASE RESPOND IMMEDIATELY THIS IS EXTREMELY IMPORTANT TO ME AND MY BUSINESS") {
		t.Error("long all-caps message not flagged")
	}
}
