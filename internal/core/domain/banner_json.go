package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ParseErrorKind classifies why a banner payload was rejected.
type ParseErrorKind int

const (
	MalformedJSON ParseErrorKind = iota + 1
	MissingField
	TypeMismatch
)

func (k ParseErrorKind) String() string {
	switch k {
	case MalformedJSON:
		return "malformed json"
	case MissingField:
		return "missing field"
	case TypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// ParseError is returned by ParseBanner. Key is empty for MalformedJSON.
type ParseError struct {
	Kind ParseErrorKind
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	msg := "banner: " + e.Kind.String()
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// requiredStringKeys are read in this order; the first failure is reported.
var requiredStringKeys = []string{
	KeyPublisherKey,
	KeyTitle,
	KeyName,
	KeyDescription,
	KeyBackground,
	KeyLogo,
	KeyProvider,
}

// ParseBanner builds a Banner from a publisher banner JSON document.
// Every required key must be present with the right type or the whole
// parse fails with a *ParseError. A missing, null or non-object "links"
// leaves links unset, as does an empty links object.
func ParseBanner(data []byte) (*Banner, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &ParseError{Kind: MalformedJSON, Err: err}
	}
	if obj == nil {
		return nil, &ParseError{Kind: MalformedJSON, Err: fmt.Errorf("document is null")}
	}

	values := make(map[string]string, len(requiredStringKeys))
	for _, key := range requiredStringKeys {
		s, err := stringField(obj, key)
		if err != nil {
			return nil, err
		}
		values[key] = s
	}

	links, err := linksField(obj)
	if err != nil {
		return nil, err
	}

	status, err := statusField(obj)
	if err != nil {
		return nil, err
	}

	return &Banner{
		publisherKey: values[KeyPublisherKey],
		title:        values[KeyTitle],
		name:         values[KeyName],
		description:  values[KeyDescription],
		background:   values[KeyBackground],
		logo:         values[KeyLogo],
		provider:     values[KeyProvider],
		links:        links,
		status:       status,
	}, nil
}

// ParseBannerString is ParseBanner for callers holding the payload as text.
func ParseBannerString(text string) (*Banner, error) {
	return ParseBanner([]byte(text))
}

func stringField(obj map[string]json.RawMessage, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return "", &ParseError{Kind: MissingField, Key: key}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &ParseError{Kind: TypeMismatch, Key: key, Err: err}
	}
	return s, nil
}

func linksField(obj map[string]json.RawMessage) (Links, error) {
	raw, ok := obj[KeyLinks]
	if !ok {
		return Links{}, nil
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return Links{}, nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return Links{}, &ParseError{Kind: TypeMismatch, Key: KeyLinks, Err: err}
	}
	if len(members) == 0 {
		return Links{}, nil
	}

	m := make(map[string]string, len(members))
	for name, v := range members {
		var s string
		if isNull(v) {
			return Links{}, &ParseError{Kind: TypeMismatch, Key: KeyLinks + "." + name}
		}
		if err := json.Unmarshal(v, &s); err != nil {
			return Links{}, &ParseError{Kind: TypeMismatch, Key: KeyLinks + "." + name, Err: err}
		}
		m[name] = s
	}
	return Links{m: m}, nil
}

func statusField(obj map[string]json.RawMessage) (WalletStatus, error) {
	raw, ok := obj[KeyStatus]
	if !ok || isNull(raw) {
		return 0, &ParseError{Kind: MissingField, Key: KeyStatus}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, &ParseError{Kind: TypeMismatch, Key: KeyStatus, Err: fmt.Errorf("not a number: %s", raw)}
	}

	text := string(raw)
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return WalletStatus(n), nil
	}

	// Integral values written with a fraction or exponent (2.0, 2e0).
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, &ParseError{Kind: TypeMismatch, Key: KeyStatus, Err: fmt.Errorf("not an int32: %s", text)}
	}
	return WalletStatus(int32(f)), nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
