package implementation

import (
	"errors"

	"ai-coach-agent-be/internal/pkg/apperror"

	"gorm.io/gorm"
)

// translateError maps GORM failures onto the app error taxonomy. Requires
// TranslateError enabled on the gorm.Config so driver-level unique violations
// surface as gorm.ErrDuplicatedKey.
func translateError(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NewNotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.NewConflict(conflictMsg)
	default:
		return apperror.NewInternal("repository failure", err)
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
