package domain

import "errors"

var (
	ErrConnectionNotFound = errors.New("connection not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrAlreadyConnected   = errors.New("profile already connected")
	ErrNoteTooLong        = errors.New("note too long")
	ErrMessageTooLong     = errors.New("message too long")
	ErrSecretNotFound     = errors.New("secret not found")
)
