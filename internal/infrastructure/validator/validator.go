package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the IValidator interface.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidatePlaylistName checks that a playlist name is present and not too long.
func (av *AppValidator) ValidatePlaylistName(name string) error {
	if err := av.validate.Var(strings.TrimSpace(name), "required,max=100"); err != nil {
		return apperr.Validation("playlist name is required and must be at most 100 characters")
	}
	return nil
}

// ValidateCommentText checks that comment text is present and not too long.
func (av *AppValidator) ValidateCommentText(text string) error {
	if err := av.validate.Var(strings.TrimSpace(text), "required,max=1000"); err != nil {
		return apperr.Validation("comment text is required and must be at most 1000 characters")
	}
	return nil
}

// ValidateVideoTitle checks that a video title is present and not too long.
func (av *AppValidator) ValidateVideoTitle(title string) error {
	if err := av.validate.Var(strings.TrimSpace(title), "required,max=200"); err != nil {
		return apperr.Validation("video title is required and must be at most 200 characters")
	}
	return nil
}
