package shared

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrors_MatchUmbrella(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"username length", ErrorUsernameLength},
		{"email format", ErrorEmailFormat},
		{"password too short", ErrorPasswordTooShort},
		{"password complexity", ErrorPasswordComplexity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, ErrorValidation) {
				t.Fatalf("expected %v to match ErrorValidation", tc.err)
			}
			if !errors.Is(tc.err, tc.err) {
				t.Fatalf("expected %v to match itself", tc.err)
			}
		})
	}
}

func TestValidationErrors_DoNotMatchEachOther(t *testing.T) {
	if errors.Is(ErrorUsernameLength, ErrorEmailFormat) {
		t.Fatal("distinct validation errors must not match each other")
	}
}

func TestNonValidationErrors_DoNotMatchUmbrella(t *testing.T) {
	for _, err := range []error{ErrorNotFound, ErrorAlreadyExists, ErrorUnavailable, ErrorInternal} {
		if errors.Is(err, ErrorValidation) {
			t.Fatalf("%v must not match ErrorValidation", err)
		}
	}
}

func TestWrappedSentinels_StillMatch(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", ErrorAlreadyExists)
	if !errors.Is(wrapped, ErrorAlreadyExists) {
		t.Fatal("wrapped sentinel must still match")
	}
}
