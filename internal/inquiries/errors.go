package inquiries

import "errors"

var (
	// ErrInvalidName is returned when the name is invalid
	ErrInvalidName = errors.New("name is required")

	// ErrMissingContact is returned when both email and phone are missing
	ErrMissingContact = errors.New("either email or phone is required")

	// ErrInquiryNotFound is returned when an inquiry is not found
	ErrInquiryNotFound = errors.New("inquiry not found")
)
