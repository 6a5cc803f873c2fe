package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindPlainMessage
	KindFieldErrors
	KindUnreachable
)

// Error is the normalized shape of every failed request. The backend answers
// with a plain string, a {"message": ...} object or a field->messages map
// depending on the handler; callers switch on Kind instead of guessing.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindFieldErrors:
		parts := make([]string, 0, len(e.Fields))
		for field, msgs := range e.Fields {
			parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
		}
		return fmt.Sprintf("validation failed (%d): %s", e.Status, strings.Join(parts, ", "))
	case KindUnreachable:
		return e.Message
	default:
		return fmt.Sprintf("%s (%d)", e.Message, e.Status)
	}
}

func unreachable(err error) *Error {
	return &Error{Kind: KindUnreachable, Message: fmt.Sprintf("backend unreachable: %v", err)}
}

func parseError(status int, body []byte) *Error {
	var s string
	if err := json.Unmarshal(body, &s); err == nil && s != "" {
		return &Error{Kind: KindPlainMessage, Status: status, Message: s}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"message", "detail", "error"} {
			var msg string
			if raw, ok := obj[key]; ok && json.Unmarshal(raw, &msg) == nil && msg != "" {
				return &Error{Kind: KindPlainMessage, Status: status, Message: msg}
			}
		}

		fields := make(map[string][]string, len(obj))
		allFields := len(obj) > 0
		for key, raw := range obj {
			var msgs []string
			if json.Unmarshal(raw, &msgs) == nil {
				fields[key] = msgs
				continue
			}
			var one string
			if json.Unmarshal(raw, &one) == nil {
				fields[key] = []string{one}
				continue
			}
			allFields = false
			break
		}
		if allFields {
			return &Error{Kind: KindFieldErrors, Status: status, Fields: fields, Message: "validation failed"}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = "request failed"
	}
	return &Error{Kind: KindUnknown, Status: status, Message: msg}
}
