package errors_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations/spiget"
	"github.com/matzehuels/spiget/pkg/models"
)

func TestErrorString(t *testing.T) {
	err := apierr.New(apierr.ErrCodeInvalidInput, "resource id must be positive, got %d", 0)
	if got, want := err.Error(), "INVALID_INPUT: resource id must be positive, got 0"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := apierr.Wrap(apierr.ErrCodeCache, errors.New("disk full"), "write %s", "status")
	if got, want := wrapped.Error(), "CACHE_ERROR: write status: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("bad base64", func(t *testing.T) {
		_, err := models.Base64Encoded("!!!").Decode()
		if !apierr.Is(err, apierr.ErrCodeDecode) {
			t.Fatalf("Decode() err = %v, want DECODE_ERROR", err)
		}
		var corrupt base64.CorruptInputError
		if !errors.As(err, &corrupt) {
			t.Errorf("cause should be a base64.CorruptInputError, got %v", errors.Unwrap(err))
		}
		if got := apierr.UserMessage(err); got != "invalid base64 payload" {
			t.Errorf("UserMessage() = %q", got)
		}
	})

	t.Run("not utf-8", func(t *testing.T) {
		payload := models.Base64Encoded(base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe}))
		_, err := payload.Decode()
		if !apierr.Is(err, apierr.ErrCodeDecode) {
			t.Fatalf("Decode() err = %v, want DECODE_ERROR", err)
		}
		if errors.Unwrap(err) != nil {
			t.Errorf("UTF-8 failure has no underlying cause, got %v", errors.Unwrap(err))
		}
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := models.DecodeJSON[[]models.Resource]([]byte(`{"id":1}`), "resources")
		if !apierr.Is(err, apierr.ErrCodeDecode) {
			t.Fatalf("DecodeJSON() err = %v, want DECODE_ERROR", err)
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			t.Errorf("cause should be a *json.UnmarshalTypeError, got %T", errors.Unwrap(err))
		}
	})
}

func TestStatusChain(t *testing.T) {
	err := apierr.FromStatus(http.StatusNotFound, "resource not found", "resources/424242")

	if !apierr.Is(err, apierr.ErrCodeNotFound) {
		t.Errorf("code = %v, want NOT_FOUND", apierr.GetCode(err))
	}
	se := apierr.AsStatus(err)
	if se == nil || se.StatusCode != http.StatusNotFound || se.Message != "resource not found" {
		t.Fatalf("AsStatus() = %+v", se)
	}
	if got, want := apierr.UserMessage(err), "GET resources/424242 (resource not found)"; got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}

	// The outermost code wins; the status stays reachable.
	outer := apierr.Wrap(apierr.ErrCodeInternal, err, "load resource")
	if apierr.Is(outer, apierr.ErrCodeNotFound) || !apierr.Is(outer, apierr.ErrCodeInternal) {
		t.Errorf("GetCode(outer) = %v, want INTERNAL_ERROR", apierr.GetCode(outer))
	}
	if apierr.AsStatus(outer) != se {
		t.Error("AsStatus should find the status through an outer wrap")
	}
}

func TestInvalidSearchField(t *testing.T) {
	tests := []struct {
		name  string
		check func() error
		value string
	}{
		{"resource field", spiget.ResourceSearchField("bogus").Validate, "bogus"},
		{"author field", spiget.AuthorSearchField("tag").Validate, "tag"},
		{"method", spiget.ForVersionsMethod("some").Validate, "some"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if code := apierr.GetCode(err); code != apierr.ErrCodeInvalidField {
				t.Fatalf("GetCode() = %q, want INVALID_SEARCH_FIELD", code)
			}
			if apierr.AsStatus(err) != nil {
				t.Error("validation errors carry no status")
			}
			if !strings.Contains(apierr.UserMessage(err), tt.value) {
				t.Errorf("UserMessage() = %q, should name %q", apierr.UserMessage(err), tt.value)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	_, decodeErr := models.Base64Encoded("%%%").Decode()

	tests := []struct {
		name string
		err  error
		want apierr.Code
	}{
		{"decode", decodeErr, apierr.ErrCodeDecode},
		{"rate limited", apierr.FromStatus(http.StatusTooManyRequests, "", "status"), apierr.ErrCodeRateLimited},
		{"server error", apierr.FromStatus(http.StatusBadGateway, "", "status"), apierr.ErrCodeHTTPStatus},
		{"search field", spiget.ResourceSearchField("x").Validate(), apierr.ErrCodeInvalidField},
		{"bare status error", &apierr.StatusError{StatusCode: http.StatusNotFound}, ""},
		{"transport", errors.New("dial tcp: connection refused"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apierr.GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessagePassesThroughPlainErrors(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	if got := apierr.UserMessage(err); got != err.Error() {
		t.Errorf("UserMessage() = %q, want %q", got, err.Error())
	}
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		code    apierr.Code
		text    string
	}{
		{"not found", 404, "resource not found", apierr.ErrCodeNotFound, "status 404: resource not found"},
		{"rate limited", 429, "", apierr.ErrCodeRateLimited, "status 429"},
		{"server error", 500, "", apierr.ErrCodeHTTPStatus, "status 500"},
		{"bad request", 400, "invalid field", apierr.ErrCodeHTTPStatus, "status 400: invalid field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := &apierr.StatusError{StatusCode: tt.status, Message: tt.message}
			if se.Error() != tt.text {
				t.Errorf("Error() = %q, want %q", se.Error(), tt.text)
			}
			if se.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", se.Code(), tt.code)
			}
		})
	}
}
