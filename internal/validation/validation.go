// Package validation проверки входных данных сервера и CLI.
package validation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/iudanet/casesync/internal/models"
)

// UsernamePattern определяет допустимый формат username:
// латинские буквы, цифры и нижнее подчеркивание, 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
)

// ValidateUsername проверяет, что username соответствует UsernamePattern
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("username cannot be empty")
	case len(username) < MinUsernameLen:
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	case !UsernamePattern.MatchString(username):
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}
	return nil
}

// ValidatePassword проверяет минимальную длину пароля
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateCaseID проверяет, что ID кейса является UUID
func ValidateCaseID(id string) error {
	if id == "" {
		return fmt.Errorf("case id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("case id must be a UUID: %w", err)
	}
	return nil
}

// ValidateCaseType проверяет тип кейса; пустое значение допустимо только если allowEmpty
func ValidateCaseType(caseType models.CaseType, allowEmpty bool) error {
	switch caseType {
	case models.CaseTypePrehospital, models.CaseTypeFieldHospital:
		return nil
	case "":
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("case type cannot be empty")
	}
	return fmt.Errorf("unknown case type %q", caseType)
}

// ParseCaseVersion разбирает параметр caseVersion (неотрицательное целое)
func ParseCaseVersion(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("case version is required")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("case version must be an integer: %w", err)
	}
	if v < 0 {
		return 0, fmt.Errorf("case version must not be negative")
	}
	return v, nil
}
