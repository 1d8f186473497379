// Package validation holds the checks forms run before anything is sent to the backend.
package validation

import (
	"errors"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"strings"
	"time"
	"unicode"
)

const (
	MaxPhoneDigits = 8
	MaxUploadBytes = 2 * 1024 * 1024
	PDFContentType = "application/pdf"

	MinExitDuration = 24 * time.Hour
)

type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Required appends a FieldError to result for every field whose value is blank.
// fields is a list of name/value pairs.
func Required(result error, fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			result = multierror.Append(result, &FieldError{fields[i], "is required"})
		}
	}
	return result
}

// PhoneDigits keeps only digits and caps the result at MaxPhoneDigits.
func PhoneDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == MaxPhoneDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// WeakPassword reports passwords shorter than 6 characters, or missing an
// upper-case letter or a digit.
func WeakPassword(password string) bool {
	if len(password) < 6 {
		return true
	}
	var upper, digit bool
	for _, r := range password {
		upper = upper || unicode.IsUpper(r)
		digit = digit || unicode.IsDigit(r)
	}
	return !upper || !digit
}

type SignUp struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// Validate returns every blocking problem at once. A weak password is not
// blocking; it is reported through weak.
func (s *SignUp) Validate() (weak bool, err error) {
	err = Required(err,
		"firstname", s.FirstName,
		"lastname", s.LastName,
		"email", s.Email,
		"password", s.Password,
		"phone", s.Phone,
	)

	if strings.TrimSpace(s.Password) != "" {
		weak = WeakPassword(s.Password)
	}

	if s.Password != s.ConfirmPassword {
		err = multierror.Append(err, &FieldError{"confirm_password", "passwords do not match"})
	}

	phone := strings.TrimSpace(s.Phone)
	if phone != "" && (len(phone) > MaxPhoneDigits || !onlyDigits(phone)) {
		err = multierror.Append(err, &FieldError{"phone", fmt.Sprintf("only numbers allowed (max %d digits)", MaxPhoneDigits)})
	}

	return weak, err
}

type Address struct {
	ProvinceID  int
	Description string
	Phone       string
}

func (a *Address) Validate() error {
	var err error
	if a.ProvinceID == 0 {
		err = multierror.Append(err, &FieldError{"province", "is required"})
	}
	err = Required(err, "description", a.Description)

	if len(a.Phone) != MaxPhoneDigits || !onlyDigits(a.Phone) {
		err = multierror.Append(err, &FieldError{"phone", fmt.Sprintf("must have exactly %d digits", MaxPhoneDigits)})
	}
	return err
}

// Document checks an attachment before upload.
func Document(contentType string, size int64) error {
	return DocumentField("file", contentType, size)
}

// DocumentField is Document for a form with several attachments.
func DocumentField(field, contentType string, size int64) error {
	var err error
	if contentType != PDFContentType {
		err = multierror.Append(err, &FieldError{field, "only PDF files are allowed"})
	}
	if size > MaxUploadBytes {
		err = multierror.Append(err, &FieldError{field, "exceeds the 2 MB limit"})
	}
	return err
}

// ExitWindow requires entry to come at least MinExitDuration after exit.
// Zero times are reported as unreadable dates.
func ExitWindow(exit, entry time.Time) error {
	var err error
	if exit.IsZero() {
		err = multierror.Append(err, &FieldError{"exit_date", "is not a valid date and time"})
	}
	if entry.IsZero() {
		err = multierror.Append(err, &FieldError{"entry_date", "is not a valid date and time"})
	}
	if err != nil {
		return err
	}
	if entry.Before(exit.Add(MinExitDuration)) {
		return multierror.Append(err, &FieldError{"entry_date", "must be at least 24 hours after the exit"})
	}
	return nil
}

// Fields lists the names of the fields that failed in err.
func Fields(err error) []string {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return nil
	}

	var names []string
	for _, e := range merr.Errors {
		if fe, ok := e.(*FieldError); ok {
			names = append(names, fe.Field)
		}
	}
	return names
}
