// Package eligibility verifies Ayushman Bharat card numbers. The verifier is
// a stand-in for the government API: it validates by card-number prefix and
// returns the scheme's standard coverage terms.
package eligibility

import "strings"

// CheckResult is the outcome of a card verification.
type CheckResult struct {
	Eligible       bool   `json:"eligible"`
	Message        string `json:"message"`
	CoverageAmount int    `json:"coverage_amount,omitempty"`
	ValidUntil     string `json:"valid_until,omitempty"`
}

// defaultCoverageAmount is the PM-JAY per-family annual cover in INR.
const defaultCoverageAmount = 500000

var validPrefixes = map[string]bool{
	"AYU": true,
	"PMJ": true,
	"HIN": true,
}

type Service struct {
	validUntil string
}

// NewService creates a verifier whose issued validity window ends at
// validUntil (YYYY-MM-DD).
func NewService(validUntil string) *Service {
	return &Service{validUntil: validUntil}
}

// Check validates a card number. A missing number is not an error, just an
// ineligible result.
func (s *Service) Check(cardNumber string) CheckResult {
	cardNumber = strings.TrimSpace(cardNumber)
	if cardNumber == "" {
		return CheckResult{Eligible: false, Message: "No card number provided"}
	}
	if len(cardNumber) >= 3 && validPrefixes[strings.ToUpper(cardNumber[:3])] {
		return CheckResult{
			Eligible:       true,
			Message:        "Ayushman Bharat card is valid",
			CoverageAmount: defaultCoverageAmount,
			ValidUntil:     s.validUntil,
		}
	}
	return CheckResult{Eligible: false, Message: "Invalid or expired Ayushman card"}
}
