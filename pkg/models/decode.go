package models

import (
	"encoding/json"

	apierr "github.com/matzehuels/spiget/pkg/errors"
)

// DecodeJSON decodes data into a new T. Malformed JSON and shape mismatches
// (an object where an array was expected, or the reverse) fail with
// DECODE_ERROR; what names the payload in the error message.
func DecodeJSON[T any](data []byte, what string) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, apierr.Wrap(apierr.ErrCodeDecode, err, "decode %s", what)
	}
	return v, nil
}
