package auth

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail does a structural local@domain.tld check. It is deliberately
// loose; deliverability is the mailer's problem.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
