package retry

import (
	"errors"
	"os"
	"syscall"
)

// ErrorClassifier determines whether an error is transient (retryable) or fatal.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// transientErrnos are the host I/O failures that tend to clear on their own:
// a busy or locked file, an interrupted call, a slow network mount.
var transientErrnos = []syscall.Errno{
	syscall.EAGAIN,
	syscall.EBUSY,
	syscall.EINTR,
	syscall.ETIMEDOUT,
}

// IOErrorClassifier classifies errors from reading and writing disk images.
type IOErrorClassifier struct{}

// NewIOErrorClassifier creates a new host I/O error classifier.
func NewIOErrorClassifier() *IOErrorClassifier {
	return &IOErrorClassifier{}
}

// IsTransient reports whether err is worth another attempt.
// Missing files, permission problems and malformed data never are.
func (c *IOErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
