package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindStore, "store error"},
		{KindParse, "parse error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE_BuildsFromArgs(t *testing.T) {
	underlying := errors.New("boom")
	err := E(Op("page.Open"), KindStore, "opening db", underlying)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("E did not return an *Error: %T", err)
	}
	if e.Op != "page.Open" || e.Kind != KindStore || e.Context != "opening db" || e.Err != underlying {
		t.Errorf("E produced %+v", e)
	}
}

func TestE_ContextOnlyBecomesErr(t *testing.T) {
	err := E(Op("x"), KindInvalid, "just a message")
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected *Error")
	}
	if e.Err == nil || e.Err.Error() != "just a message" {
		t.Errorf("context-only E should synthesize Err, got %v", e.Err)
	}
}

func TestIs_MatchesKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", PageNotFound("abc"))
	if !Is(err, KindNotFound) {
		t.Error("Is should see KindNotFound through wrapping")
	}
	if Is(err, KindStore) {
		t.Error("Is matched the wrong kind")
	}
	if Is(errors.New("plain"), KindNotFound) {
		t.Error("Is matched a plain error")
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(StoreOpenFailed("/tmp/x.db", errors.New("locked"))); got != KindStore {
		t.Errorf("GetKind = %v, want KindStore", got)
	}
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind(plain) = %v, want KindUnknown", got)
	}
}

func TestDomainConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"PageNotFound", PageNotFound("id1"), KindNotFound},
		{"StoreOpenFailed", StoreOpenFailed("/x", errors.New("e")), KindStore},
		{"ConfigLoadFailed", ConfigLoadFailed("/c", errors.New("e")), KindConfig},
		{"ConfigSaveFailed", ConfigSaveFailed("/c", errors.New("e")), KindConfig},
		{"ConfigInvalid", ConfigInvalid("bad"), KindInvalid},
		{"ImportUnavailable", ImportUnavailable(), KindNotFound},
		{"ImportFailed", ImportFailed("/d.txt", errors.New("e")), KindParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("%s kind = %v, want %v", tt.name, GetKind(tt.err), tt.kind)
			}
		})
	}
}
