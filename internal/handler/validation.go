package handler

// validation.go holds the input rules for the two request families.  The
// bounds mirror the product requirements (display name 3-50, password at
// least 6, course name 3-100, description 3-500, instructor 3-50) and are
// deliberately plain data checks: no rule here touches the database.

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

func runeLenBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	a, err := mail.ParseAddress(s)
	// mail.ParseAddress accepts display names ("Ann <a@b.com>"); only the
	// bare address form counts as valid input here.
	return err == nil && a.Address == s
}

// validateRegister checks a registration payload and returns a
// user-correctable message, or "" when the input is acceptable.
func validateRegister(name, email, password string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return "Name is required."
	case !runeLenBetween(name, 3, 50):
		return "Name should have between 3 and 50 characters."
	case email == "":
		return "Email is required."
	case !validEmail(email):
		return "Email must be a valid email."
	case password == "":
		return "Password is required."
	case utf8.RuneCountInString(password) < 6:
		return "Password should have at least 6 characters."
	}
	return ""
}

// validateLogin checks a login payload.
func validateLogin(email, password string) string {
	switch {
	case email == "":
		return "Email is required."
	case !validEmail(email):
		return "Email must be a valid email."
	case password == "":
		return "Password is required."
	}
	return ""
}

// validateCourse checks the three course fields shared by create, update
// and bulk upload.
func validateCourse(name, description, instructor string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return "Name is required."
	case !runeLenBetween(name, 3, 100):
		return "Name should have between 3 and 100 characters."
	case strings.TrimSpace(description) == "":
		return "Description is required."
	case !runeLenBetween(description, 3, 500):
		return "Description should have between 3 and 500 characters."
	case strings.TrimSpace(instructor) == "":
		return "Instructor name is required."
	case !runeLenBetween(instructor, 3, 50):
		return "Instructor name should have between 3 and 50 characters."
	}
	return ""
}
