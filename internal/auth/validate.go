package auth

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 6
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, fmt.Sprintf(format, args...))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(in *RegisterInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := validateUsername(in.Username); err != nil {
		return err
	}
	if !isValidEmail(in.Email) {
		return invalid("invalid email format")
	}
	if err := validatePassword(in.Password); err != nil {
		return err
	}
	if in.FirstName == "" {
		return invalid("first name is required")
	}
	if in.LastName == "" {
		return invalid("last name is required")
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return invalid("username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return invalid("username can only contain letters, numbers, and underscores")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return invalid("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s cannot be empty", field)
	}
	return nil
}

func validateTheme(theme string) error {
	switch theme {
	case storage.ThemeLight, storage.ThemeDark, storage.ThemeSystem:
		return nil
	default:
		return invalid("theme must be one of %s, %s, %s", storage.ThemeLight, storage.ThemeDark, storage.ThemeSystem)
	}
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
