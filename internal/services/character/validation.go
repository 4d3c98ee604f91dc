package character

import (
	"unicode"

	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
)

const maxNameLength = 50

// ValidateName accepts a non-empty name made only of letters
func ValidateName(name string) error {
	if name == "" {
		return rgerr.InvalidArgument("character name is required")
	}

	if len([]rune(name)) > maxNameLength {
		return rgerr.InvalidArgumentf("character name cannot exceed %d characters", maxNameLength)
	}

	for _, r := range name {
		if !unicode.IsLetter(r) {
			return rgerr.InvalidArgumentf("character name %q must contain letters only", name)
		}
	}
	return nil
}
