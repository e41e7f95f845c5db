package models

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	apierr "github.com/matzehuels/spiget/pkg/errors"
)

// Base64Encoded is a base64 string as sent by the API.
// It marshals back to the same string it was decoded from.
type Base64Encoded string

// Bytes decodes the payload into raw bytes. Line breaks inside the payload
// are ignored and missing padding is tolerated.
func (b Base64Encoded) Bytes() ([]byte, error) {
	s := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, string(b))

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil && len(s)%4 != 0 {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	}
	if err != nil {
		return nil, apierr.Wrap(apierr.ErrCodeDecode, err, "invalid base64 payload")
	}
	return data, nil
}

// Decode returns the payload as UTF-8 text.
// It fails if the payload is not base64 or does not decode to valid UTF-8.
func (b Base64Encoded) Decode() (string, error) {
	data, err := b.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", apierr.New(apierr.ErrCodeDecode, "base64 payload is not valid UTF-8")
	}
	return string(data), nil
}

// IsEmpty reports whether no payload was sent.
func (b Base64Encoded) IsEmpty() bool { return b == "" }

// EncodeText wraps plain text as a Base64Encoded value.
func EncodeText(text string) Base64Encoded {
	return Base64Encoded(base64.StdEncoding.EncodeToString([]byte(text)))
}
