// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/depgraph/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "pattern_invalid_error",
			code:    errors.ErrPatternInvalid,
			message: "bad pattern",
			wantStr: "[PATTERN_INVALID] bad pattern",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid rule",
			wantStr: "[INVALID_INPUT] invalid rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("regexp: missing closing )")
	err := errors.Wrap(base, errors.ErrRegexCompile, "cannot compile exclude pattern")

	if err.Code != errors.ErrRegexCompile {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrRegexCompile)
	}

	if !stderrors.Is(err, base) {
		t.Error("wrapped error should match errors.Is against the base error")
	}

	want := "[REGEX_COMPILE] cannot compile exclude pattern: regexp: missing closing )"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrInternal, "nope") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := stderrors.New("boom")
	err := errors.Wrapf(base, errors.ErrRuleParse, "rule %d is malformed", 3)

	want := "[RULE_PARSE] rule 3 is malformed: boom"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrCoordinateParse, "cannot parse %q", "org")

	if !errors.IsErrorCode(err, errors.ErrCoordinateParse) {
		t.Error("IsErrorCode should match the assigned code")
	}

	if errors.IsErrorCode(err, errors.ErrInternal) {
		t.Error("IsErrorCode should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrInternal) {
		t.Error("IsErrorCode should be false for non-depgraph errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrRuleInvalid, "x")); got != errors.ErrRuleInvalid {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrRuleInvalid)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPatternInvalid, "bad pattern").
		WithDetail("pattern", "org-[").
		WithDetail("field", "group")

	if err.Details["pattern"] != "org-[" {
		t.Errorf("Details[pattern] = %v, want %q", err.Details["pattern"], "org-[")
	}

	if err.Details["field"] != "group" {
		t.Errorf("Details[field] = %v, want %q", err.Details["field"], "group")
	}
}
