package auth

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"product-insights/internal/model"
)

// Credential length limits, counted in characters after trimming whitespace.
const (
	MinUsernameLength = 1
	MinPasswordLength = 6
)

// FieldError describes one failed constraint on the request body.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrors is returned when a signup or login payload is rejected.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprintf("%s: %s", strings.Join(e.Loc, "."), e.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateCredentials decodes a signup/login body and checks both fields.
// Returned values are trimmed.
func ValidateCredentials(body []byte) (model.Credentials, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return model.Credentials{}, ValidationErrors{{
			Loc:  []string{"body"},
			Msg:  "Input should be a valid JSON object",
			Type: "model_type",
		}}
	}

	var errs ValidationErrors
	username, fieldErr := stringField(fields, "username", MinUsernameLength)
	if fieldErr != nil {
		errs = append(errs, *fieldErr)
	}
	password, fieldErr := stringField(fields, "password", MinPasswordLength)
	if fieldErr != nil {
		errs = append(errs, *fieldErr)
	}

	if len(errs) > 0 {
		return model.Credentials{}, errs
	}

	return model.Credentials{Username: username, Password: password}, nil
}

func stringField(fields map[string]json.RawMessage, name string, minLength int) (string, *FieldError) {
	raw, ok := fields[name]
	if !ok {
		return "", &FieldError{Loc: []string{name}, Msg: "Field required", Type: "missing"}
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &FieldError{Loc: []string{name}, Msg: "Input should be a valid string", Type: "string_type"}
	}

	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) < minLength {
		return "", &FieldError{
			Loc:  []string{name},
			Msg:  fmt.Sprintf("String should have at least %d characters", minLength),
			Type: "string_too_short",
		}
	}

	return value, nil
}
