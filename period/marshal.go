package period

import (
	"encoding/json"
	"fmt"
)

// MarshalText renders the period as ISO-8601 text. If Input was explicitly
// set (e.g. by Parse), its exact text is returned; otherwise the period's
// canonical String form is used.
func (p Period) MarshalText() ([]byte, error) {
	if p.Input != "" {
		return []byte(p.Input), nil
	}
	return []byte(p.String()), nil
}

// UnmarshalText parses ISO-8601 period text into p, replacing its contents.
// Parsing does not normalise (e.g. "P48M" stays 48 months rather than
// becoming 4 years), so that a round trip through Marshal/Unmarshal always
// reproduces the same field values it started from.
func (p *Period) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data), false)
	if err != nil {
		return fmt.Errorf("period.UnmarshalText: %w", err)
	}
	*p = parsed
	return nil
}

// MarshalJSON renders the period as a JSON string in ISO-8601 form.
func (p Period) MarshalJSON() ([]byte, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON parses a JSON string in ISO-8601 period form into p.
func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("period.UnmarshalJSON: %w", err)
	}
	return p.UnmarshalText([]byte(s))
}

// GobEncode implements gob.GobEncoder so that Period's unexported fields
// survive gob encoding via its ISO-8601 text form.
func (p Period) GobEncode() ([]byte, error) {
	return p.MarshalText()
}

// GobDecode implements gob.GobDecoder, the inverse of GobEncode.
func (p *Period) GobDecode(data []byte) error {
	return p.UnmarshalText(data)
}
