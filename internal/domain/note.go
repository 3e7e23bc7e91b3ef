package domain

import (
	"fmt"
	"unicode/utf8"
)

const (
	DefaultMaxNoteLength    = 500
	DefaultMaxMessageLength = 300
)

func ValidateNote(note string, maxLength int) error {
	if exceeds(note, maxLength) {
		return fmt.Errorf("%w: %d characters exceeds the %d character limit", ErrNoteTooLong, utf8.RuneCountInString(note), maxLength)
	}

	return nil
}

func ValidateMessage(message string, maxLength int) error {
	if exceeds(message, maxLength) {
		return fmt.Errorf("%w: %d characters exceeds the %d character limit", ErrMessageTooLong, utf8.RuneCountInString(message), maxLength)
	}

	return nil
}

func exceeds(text string, maxLength int) bool {
	if maxLength <= 0 {
		return false
	}

	return utf8.RuneCountInString(text) > maxLength
}
