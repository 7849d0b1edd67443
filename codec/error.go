package codec

import "fmt"

// BufferTooShort - Custom error to inform that a buffer can't hold (or doesn't contain) the bytes needed
type BufferTooShort struct {
	msg string
}

// NewBufferTooShort - Returns a BufferTooShort error with a message stating needed and available bytes
func NewBufferTooShort(needed, available int) BufferTooShort {
	return BufferTooShort{msg: fmt.Sprintf("buffer too short, needs %d bytes but has %d", needed, available)}
}

// Error - Used to notify that a buffer was too short
func (B BufferTooShort) Error() string {
	if B.msg == "" {
		return "buffer too short"
	}
	return B.msg
}

// Is - Makes errors.Is match any BufferTooShort regardless of message
func (B BufferTooShort) Is(target error) bool {
	_, ok := target.(BufferTooShort)
	return ok
}

// InvalidHeader - Custom error to inform that serialized hash map data doesn't start with a valid header
type InvalidHeader struct {
	msg string
}

// NewInvalidHeader - Returns an InvalidHeader error with the given message
func NewInvalidHeader(msg string) InvalidHeader {
	return InvalidHeader{msg: msg}
}

// Error - Used to notify that a header was invalid
func (I InvalidHeader) Error() string {
	if I.msg == "" {
		return "invalid header"
	}
	return I.msg
}

// Is - Makes errors.Is match any InvalidHeader regardless of message
func (I InvalidHeader) Is(target error) bool {
	_, ok := target.(InvalidHeader)
	return ok
}
