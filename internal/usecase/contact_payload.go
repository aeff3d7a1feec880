package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"portfolio-contact-api/internal/domain"
)

var errEmptyBody = errors.New("request body is null")

// formValue accepts any JSON value. Falsy values (null, "", false, 0)
// decode to the empty string so that they fail the presence check the same
// way a missing key does. Everything else takes the text a browser form
// handler would see: arrays comma-joined, objects as "[object Object]".
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	raw, err := decodeAny(b)
	if err != nil {
		return err
	}

	if isFalsy(raw) {
		*v = ""
		return nil
	}
	*v = formValue(textOf(raw))
	return nil
}

func decodeAny(b []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func isFalsy(raw interface{}) bool {
	switch x := raw.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}
	return false
}

func textOf(raw interface{}) string {
	switch x := raw.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return numberText(x)
	case []interface{}:
		parts := make([]string, len(x))
		for i, el := range x {
			// null elements join as empty
			if el != nil {
				parts[i] = textOf(el)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// numberText renders n in the shortest round-trip form, switching to
// exponent notation outside [1e-6, 1e21).
func numberText(n json.Number) string {
	f, err := n.Float64()
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case err != nil:
		return n.String()
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits: 1e-07 -> 1e-7
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type contactPayload struct {
	Name    formValue `json:"name"`
	Email   formValue `json:"email"`
	Subject formValue `json:"subject"`
	Message formValue `json:"message"`
}

// parseSubmission decodes a raw request body. Only invalid JSON and a bare
// null are errors; any other non-object value carries no fields and is left
// to the presence check.
func parseSubmission(raw []byte) (*domain.ContactSubmission, error) {
	var body json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode contact payload: %w", err)
	}

	body = bytes.TrimSpace(body)
	switch {
	case bytes.Equal(body, []byte("null")):
		return nil, errEmptyBody
	case body[0] != '{':
		return &domain.ContactSubmission{}, nil
	}

	var p contactPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode contact payload: %w", err)
	}

	return &domain.ContactSubmission{
		Name:    string(p.Name),
		Email:   string(p.Email),
		Subject: string(p.Subject),
		Message: string(p.Message),
	}, nil
}
