// Package validation normalizes and validates raw submission fields before
// they reach the record store. A submission either fully validates or is
// rejected wholesale; nothing partially normalized escapes.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	apperrors "github.com/ncinga/temi-event-backend/errors"
	"github.com/ncinga/temi-event-backend/types"
)

const (
	maxNameLen        = 120
	maxDesignationLen = 120
	maxCommentLen     = 2000
	minRating         = 1
	maxRating         = 5
)

// Registration validates and normalizes a registration submission. The
// returned record carries only the visitor fields; event id, source and
// created_at are assigned downstream.
func Registration(in types.RegistrationCreate) (*types.Registration, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.ValidationFailed("name", "name must not be blank")
	}
	// caps count characters, not bytes: names and comments are routinely
	// non-ASCII here
	if utf8.RuneCountInString(name) > maxNameLen {
		return nil, apperrors.ValidationFailed("name", fmt.Sprintf("name must be at most %d characters", maxNameLen))
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	designation := strings.TrimSpace(in.Designation)
	if utf8.RuneCountInString(designation) > maxDesignationLen {
		return nil, apperrors.ValidationFailed("designation", fmt.Sprintf("designation must be at most %d characters", maxDesignationLen))
	}

	return &types.Registration{
		Name:        name,
		Email:       email,
		Designation: designation,
	}, nil
}

// Feedback validates and normalizes a feedback submission.
func Feedback(in types.FeedbackCreate) (*types.Feedback, error) {
	if in.Rating < minRating || in.Rating > maxRating {
		return nil, apperrors.ValidationFailed("rating", fmt.Sprintf("rating must be between %d and %d", minRating, maxRating))
	}

	comment := strings.TrimSpace(in.Comment)
	if utf8.RuneCountInString(comment) > maxCommentLen {
		return nil, apperrors.ValidationFailed("comment", fmt.Sprintf("comment must be at most %d characters", maxCommentLen))
	}

	return &types.Feedback{
		Rating:  in.Rating,
		Comment: comment,
	}, nil
}

// normalizeEmail parses a mailbox address and returns its lowercased
// addr-spec. Display names and surrounding whitespace are stripped.
func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apperrors.ValidationFailed("email", "email must not be blank")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", apperrors.ValidationFailed("email", "email is not a valid mailbox address")
	}
	return strings.ToLower(addr.Address), nil
}
