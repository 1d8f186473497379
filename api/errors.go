package api

import (
	"errors"
	"fmt"
	"github.com/goccy/go-json"
	"net/http"
	"strings"
)

var ErrUnauthorized = errors.New("unauthorized")

const (
	MessageBadCredentials = "invalid email or password"
	MessageServerError    = "server error, please try again later"
)

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

func newError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		}
	}
	return &Error{StatusCode: status, Message: msg}
}

// UserMessage is the text shown to the user for a failed call: a
// credentials-specific message for 401, a generic one for everything else.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrUnauthorized) {
		return MessageBadCredentials
	}
	return MessageServerError
}
