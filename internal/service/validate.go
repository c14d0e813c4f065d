package service

import (
	"regexp"
	"strings"

	"github.com/alliance-hq/roster/internal/model"
)

// ValidationError aggregates per-field messages. Handlers render it as
// {"error":{field:[messages]}} with a 400 status.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	alnumPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Field validators are small and independent; each endpoint assembles the
// set it needs rather than inheriting a shared schema.

func checkUsername(value string) []string {
	var msgs []string
	if strings.TrimSpace(value) == "" {
		return []string{"username is required"}
	}
	if len(value) < 3 {
		msgs = append(msgs, "username must be at least 3 characters")
	}
	if !alnumPattern.MatchString(value) {
		msgs = append(msgs, "username must be alphanumeric")
	}
	return msgs
}

func checkEmail(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{"email is required"}
	}
	if !emailPattern.MatchString(value) {
		return []string{"invalid email format"}
	}
	return nil
}

func checkPassword(value string) []string {
	if value == "" {
		return []string{"password is required"}
	}
	if len(value) < 6 {
		return []string{"password must be at least 6 characters"}
	}
	return nil
}

func checkRole(value string) []string {
	if value == "" {
		return nil
	}
	if !model.Role(value).Valid() {
		return []string{`role must be either "user" or "admin"`}
	}
	return nil
}

func checkMemberName(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{"name is required"}
	}
	if len(value) < 2 || len(value) > 50 {
		return []string{"name must be between 2 and 50 characters"}
	}
	return nil
}

func checkMemberRole(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{"role is required"}
	}
	return nil
}

func checkPhone(value string) []string {
	if value != "" && len(value) > 15 {
		return []string{"phone number too long (max 15 characters)"}
	}
	return nil
}

func ValidateRegistration(req model.RegisterRequest) error {
	var verr ValidationError
	for _, msg := range checkUsername(req.Username) {
		verr.add("username", msg)
	}
	for _, msg := range checkEmail(req.Email) {
		verr.add("email", msg)
	}
	for _, msg := range checkPassword(req.Password) {
		verr.add("password", msg)
	}
	for _, msg := range checkRole(req.Role) {
		verr.add("role", msg)
	}
	if req.Password != req.ConfirmPassword {
		verr.add("confirmPassword", "passwords do not match")
	}
	return verr.orNil()
}

func ValidateLogin(req model.LoginRequest) error {
	var verr ValidationError
	if strings.TrimSpace(req.Username) == "" {
		verr.add("username", "username is required")
	}
	if req.Password == "" {
		verr.add("password", "password is required")
	}
	return verr.orNil()
}

func ValidateMember(req model.MemberRequest) error {
	var verr ValidationError
	for _, msg := range checkMemberName(req.Name) {
		verr.add("name", msg)
	}
	for _, msg := range checkEmail(req.Email) {
		verr.add("email", msg)
	}
	for _, msg := range checkMemberRole(req.Role) {
		verr.add("role", msg)
	}
	for _, msg := range checkPhone(req.Phone) {
		verr.add("phone", msg)
	}
	return verr.orNil()
}
