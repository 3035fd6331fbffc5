// Package validate provides shared validation for custom pasta input.
package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hay-kot/criterio"
)

const (
	minNameLen = 2
	maxNameLen = 50

	minCookingMinutes = 1
	maxCookingMinutes = 60
)

// PastaName validates a custom pasta name: non-empty after trimming,
// 2-50 characters, letters/spaces/hyphens/apostrophes only, and
// case-insensitively unique among existing names.
func PastaName(name string, existing []string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("pasta name cannot be empty")
	}

	runes := []rune(trimmed)
	if len(runes) < minNameLen {
		return fmt.Errorf("pasta name must be at least %d characters long", minNameLen)
	}
	if len(runes) > maxNameLen {
		return fmt.Errorf("pasta name must be %d characters or less", maxNameLen)
	}

	for _, r := range runes {
		if !unicode.IsLetter(r) && !strings.ContainsRune(" -'", r) {
			return fmt.Errorf("pasta name can only contain letters, spaces, hyphens, and apostrophes")
		}
	}

	lower := strings.ToLower(trimmed)
	for _, n := range existing {
		if strings.ToLower(n) == lower {
			return fmt.Errorf("a pasta type named %q already exists", trimmed)
		}
	}

	return nil
}

// CookingTimes validates a min/max cooking range in whole minutes.
func CookingTimes(minTime, maxTime int) error {
	if minTime < minCookingMinutes || maxTime < minCookingMinutes {
		return fmt.Errorf("cooking times must be at least %d minute", minCookingMinutes)
	}
	if minTime > maxCookingMinutes || maxTime > maxCookingMinutes {
		return fmt.Errorf("cooking times must be %d minutes or less", maxCookingMinutes)
	}
	if minTime > maxTime {
		return fmt.Errorf("minimum time cannot be greater than maximum time")
	}
	return nil
}

// CustomPasta validates a full custom pasta definition, reporting all
// field errors together.
func CustomPasta(name string, minTime, maxTime int, existing []string) error {
	return criterio.ValidateStruct(
		criterio.Run("name", name, func(n string) error { return PastaName(n, existing) }),
		cookingTimesField("cooking_time", minTime, maxTime),
	)
}

func cookingTimesField(field string, minTime, maxTime int) error {
	if err := CookingTimes(minTime, maxTime); err != nil {
		return criterio.NewFieldErrors(field, err)
	}
	return nil
}
