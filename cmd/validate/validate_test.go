/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/themevars/validator"
)

func problems() []validator.ValidationError {
	return []validator.ValidationError{
		{Path: "light.primary", Message: "invalid type and category pair", Severity: validator.SeverityError},
		{Path: "dark.background", Message: "duplicate name", Severity: validator.SeverityWarning},
		{Path: "light.ring", Message: "unrecognized color", Severity: validator.SeverityWarning},
	}
}

func TestReport(t *testing.T) {
	var out, stderr bytes.Buffer
	errs, warns := report(&out, &stderr, problems(), false)

	if errs != 1 || warns != 2 {
		t.Errorf("report() = %d errors, %d warnings; want 1, 2", errs, warns)
	}
	if !strings.Contains(stderr.String(), "error: light.primary: invalid type and category pair") {
		t.Errorf("stderr missing error line: %q", stderr.String())
	}
	if strings.Count(out.String(), "warning:") != 2 {
		t.Errorf("expected two warnings on stdout, got %q", out.String())
	}
}

func TestReport_Quiet(t *testing.T) {
	var out, stderr bytes.Buffer
	errs, warns := report(&out, &stderr, problems(), true)

	if errs != 1 || warns != 2 {
		t.Errorf("report() = %d errors, %d warnings; want 1, 2", errs, warns)
	}
	if out.Len() != 0 {
		t.Errorf("expected no stdout output in quiet mode, got %q", out.String())
	}
	if stderr.Len() == 0 {
		t.Error("errors must still be printed in quiet mode")
	}
}

func TestReport_NoProblems(t *testing.T) {
	var out, stderr bytes.Buffer
	errs, warns := report(&out, &stderr, nil, false)
	if errs != 0 || warns != 0 || out.Len() != 0 || stderr.Len() != 0 {
		t.Error("expected no output for no problems")
	}
}
