package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)
)

var reservedCommunityNames = map[string]struct{}{
	"admin":       {},
	"api":         {},
	"all":         {},
	"communities": {},
	"posts":       {},
	"comments":    {},
	"users":       {},
	"metrics":     {},
	"health":      {},
	"login":       {},
	"signup":      {},
}

// ValidateEmail checks the address has a plausible mailbox@domain shape.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidateUsername enforces length and character set.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-30 characters and contain only letters, numbers, dots, hyphens, and underscores")
	}
	return nil
}

// ValidatePassword enforces a minimum length on the raw password before it
// is hashed.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if utf8.RuneCountInString(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return fmt.Errorf("password must be at most 72 characters")
	}
	return nil
}

// ValidatePhone checks an optional phone number. Blank is allowed; callers
// treat blank as "clear the stored number".
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("phone number is not valid")
	}
	return nil
}

// ValidateCommunityName validates community name length and reserved names.
func ValidateCommunityName(name string) error {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < 3 || utf8.RuneCountInString(trimmed) > 120 {
		return fmt.Errorf("community name must be 3-120 characters")
	}
	if _, exists := reservedCommunityNames[strings.ToLower(trimmed)]; exists {
		return fmt.Errorf("community name is reserved")
	}
	return nil
}

// ValidatePostTitle enforces presence and length on post titles.
func ValidatePostTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(trimmed) > 300 {
		return fmt.Errorf("title must be at most 300 characters")
	}
	return nil
}

// ValidateCommentContent enforces presence and length on comment bodies.
func ValidateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("comment content is required")
	}
	if utf8.RuneCountInString(trimmed) > 10000 {
		return fmt.Errorf("comment must be at most 10000 characters")
	}
	return nil
}
