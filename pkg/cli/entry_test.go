package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/funvibe/signum/internal/config"
)

func runEntry(t *testing.T, args []string, stdin string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out, errOut bytes.Buffer
	code = Entry(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestEval(t *testing.T) {
	code, stdout, stderr := runEntry(t, []string{"-e", "pos(2) + pos(3)"}, "")

	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d (stderr: %s)", code, stderr)
	}
	want := "(pos(2) + pos(3)) = 5 [positive] (in-place)\n"
	if stdout != want {
		t.Errorf("wrong output.\nexpected=%q\ngot=%q", want, stdout)
	}
}

func TestEvalUnresolved(t *testing.T) {
	code, stdout, _ := runEntry(t, []string{"-e", "pos(3) - pos(3)"}, "")

	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d", code)
	}
	if !strings.Contains(stdout, "= 0 [unknown]") {
		t.Errorf("wrong output: %q", stdout)
	}
	if strings.Contains(stdout, "(in-place)") {
		t.Errorf("unresolved result claims in-place: %q", stdout)
	}
}

func TestStdin(t *testing.T) {
	code, stdout, stderr := runEntry(t, nil, "neg(3) * pos(2)\n1 + 1\n")

	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d (stderr: %s)", code, stderr)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 result lines, got %d: %q", len(lines), stdout)
	}
	if !strings.Contains(lines[0], "= -6 [negative]") {
		t.Errorf("wrong first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "= 2 [unknown]") {
		t.Errorf("wrong second line: %q", lines[1])
	}
}

func TestFileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), fmt.Sprintf("input-%s.sg", uuid.New().String()))
	source := "# checked expressions\npos(6) / pos(2)\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}

	code, stdout, stderr := runEntry(t, []string{path}, "")
	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d (stderr: %s)", code, stderr)
	}
	if !strings.Contains(stdout, "= 3 [positive] (in-place)") {
		t.Errorf("wrong output: %q", stdout)
	}
	if stderr != "" {
		t.Errorf("recognized extension must not warn: %q", stderr)
	}
}

func TestFileInputUnrecognizedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), fmt.Sprintf("input-%s.txt", uuid.New().String()))
	if err := os.WriteFile(path, []byte("pos(2) + pos(2)\n"), 0o644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}

	code, stdout, stderr := runEntry(t, []string{path}, "")
	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d (stderr: %s)", code, stderr)
	}
	if !strings.Contains(stdout, "= 4 [positive]") {
		t.Errorf("unrecognized extension must still be processed: %q", stdout)
	}
	if !strings.Contains(stderr, "warning") || !strings.Contains(stderr, ".sg, .signum") {
		t.Errorf("missing extension warning: %q", stderr)
	}
}

func TestDiagnosticsExitCode(t *testing.T) {
	tests := []struct {
		name string
		expr string
		code string
	}{
		{"rejected witness", "pos(0)", "C001"},
		{"zero quotient", "pos(1) / pos(2)", "C002"},
		{"division by zero", "pos(4) / 0", "C003"},
		{"parse error", "1 +", "P002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runEntry(t, []string{"-e", tt.expr}, "")
			if code != 1 {
				t.Fatalf("wrong exit code. expected=1, got=%d", code)
			}
			if !strings.Contains(stderr, tt.code) {
				t.Errorf("stderr missing %s: %q", tt.code, stderr)
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	code, stdout, _ := runEntry(t, []string{"-version"}, "")

	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d", code)
	}
	if stdout != "signum "+config.Version+"\n" {
		t.Errorf("wrong version output: %q", stdout)
	}
}

func TestHelpFlag(t *testing.T) {
	code, stdout, _ := runEntry(t, []string{"-help"}, "")

	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d", code)
	}
	if !strings.Contains(stdout, "Usage:") || !strings.Contains(stdout, "matrix") {
		t.Errorf("usage text incomplete: %q", stdout)
	}
}

func TestMatrixSubcommand(t *testing.T) {
	code, stdout, _ := runEntry(t, []string{"matrix"}, "")

	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d", code)
	}
	for _, want := range []string{
		"op", "lhs", "rhs",
		"zero-check",
		"positive", "negative", "unsigned",
		"none",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("matrix output missing %q:\n%s", want, stdout)
		}
	}
	// 4 operators x 2 witness LHS classes x 3 RHS classes, plus the header.
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 25 {
		t.Errorf("wrong row count. expected=25, got=%d", len(lines))
	}
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{"-e"},
		{"-config"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, _, stderr := runEntry(t, args, "")
			if code != 2 {
				t.Fatalf("wrong exit code for %v. expected=2, got=%d", args, code)
			}
			if stderr == "" {
				t.Error("expected a message on stderr")
			}
		})
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), fmt.Sprintf("cfg-%s.yaml", uuid.New().String()))
	if err := os.WriteFile(path, []byte("color: never\ntrace: true\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	code, stdout, stderr := runEntry(t, []string{"-config", path, "-e", "pos(2) * pos(2)"}, "")
	if code != 0 {
		t.Fatalf("wrong exit code. expected=0, got=%d (stderr: %s)", code, stderr)
	}
	if !strings.Contains(stdout, "= 4 [positive]") {
		t.Errorf("wrong output: %q", stdout)
	}
	if !strings.Contains(stderr, "trace:") {
		t.Errorf("trace lines missing from stderr: %q", stderr)
	}
}

func TestTraceFlag(t *testing.T) {
	_, _, stderr := runEntry(t, []string{"-trace", "-e", "neg(2) + neg(3)"}, "")

	if !strings.Contains(stderr, "trace: negative + negative => negative") {
		t.Errorf("wrong trace output: %q", stderr)
	}
}
