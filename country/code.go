package country

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Code is a validated ISO 3166-1 alpha-2 country code, mirroring the
// teacher pattern of a lightweight string type that implements the
// standard marshaling interfaces for safe storage and exchange. Validation
// here is purely syntactic (two ASCII letters) since this package has no
// catalog of "real" ISO codes to check against — that list is supplied by
// the host application via Resolver.
type Code string

// NewCode validates and normalizes a two-letter alpha-2 code to uppercase.
func NewCode(raw string) (Code, error) {
	if len(raw) != 2 {
		return "", fmt.Errorf("country code must be exactly two letters, got %q", raw)
	}
	for _, r := range raw {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", fmt.Errorf("country code must be alphabetic, got %q", raw)
		}
	}
	return Code(strings.ToUpper(raw)), nil
}

// String returns the code as a plain string.
func (c Code) String() string { return string(c) }

// MatchesCode reports whether code equals this record's ISOCode, comparing
// case-insensitively.
func (r Record) MatchesCode(code string) bool {
	return strings.EqualFold(r.ISOCode, code)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if _, err := NewCode(string(c)); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	code, err := NewCode(string(text))
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// Value implements database/sql/driver.Valuer.
func (c Code) Value() (driver.Value, error) {
	if _, err := NewCode(string(c)); err != nil {
		return nil, err
	}
	return string(c), nil
}

// Scan implements database/sql.Scanner.
func (c *Code) Scan(src interface{}) error {
	if src == nil {
		*c = ""
		return nil
	}
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into country.Code", src)
	}
	code, err := NewCode(raw)
	if err != nil {
		return err
	}
	*c = code
	return nil
}
