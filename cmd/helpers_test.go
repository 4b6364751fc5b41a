package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inovacc/focset/internal/model"
)

// newTestEnv returns an environment rooted in a temp dir, with stdin fed
// from input.
func newTestEnv(t *testing.T, input string) (*appEnv, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	return &appEnv{
		cfg:     model.DefaultConfig(),
		cfgPath: filepath.Join(t.TempDir(), "config", "config.ini"),
		logger:  slog.New(slog.DiscardHandler),
		stdin:   strings.NewReader(input),
		stdout:  out,
		stderr:  io.Discard,
	}, out
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "empty path",
			input:   "",
			wantErr: true,
		},
		{
			name:    "absolute path",
			input:   "/tmp/test",
			wantErr: false,
		},
		{
			name:    "home path",
			input:   "~/test",
			wantErr: false,
		},
		{
			name:    "relative path",
			input:   "Binaries/game.exe",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("expandPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !filepath.IsAbs(result) {
				t.Errorf("expandPath(%q) = %q, want an absolute path", tt.input, result)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"Crowned Scout", 20, "Crowned Scout"},
		{"Crowned Scout", 10, "Crowned..."},
		{"Crowned Scout", 3, "Cro"},
		{"Großer Kämpfer", 8, "Große..."},
	}

	for _, tt := range tests {
		result := truncateString(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestCenterString(t *testing.T) {
	if got := centerString("ab", 6); got != "  ab  " {
		t.Errorf("centerString = %q", got)
	}

	if got := centerString("abcdef", 4); got != "abcdef" {
		t.Errorf("centerString = %q", got)
	}
}

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"yes\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer

		if got := promptConfirm(strings.NewReader(tt.input), &out, "Sure? [y/N]: "); got != tt.want {
			t.Errorf("promptConfirm(%q) = %v, want %v", tt.input, got, tt.want)
		}

		if out.String() != "Sure? [y/N]: " {
			t.Errorf("prompt written as %q", out.String())
		}
	}
}

func TestWriteOutput(t *testing.T) {
	v := map[string]string{"unique_id": "123456"}

	var js bytes.Buffer
	if err := writeOutput(&js, outputJSON, v); err != nil {
		t.Fatal(err)
	}

	if js.String() != "{\n  \"unique_id\": \"123456\"\n}\n" {
		t.Errorf("json output = %q", js.String())
	}

	var ym bytes.Buffer
	if err := writeOutput(&ym, outputYAML, v); err != nil {
		t.Fatal(err)
	}

	if ym.String() != "unique_id: \"123456\"\n" {
		t.Errorf("yaml output = %q", ym.String())
	}

	if err := writeOutput(io.Discard, outputTable, v); err == nil {
		t.Error("expected an error for table format")
	}
}

func TestPrintInfoBox(t *testing.T) {
	var out bytes.Buffer

	printInfoBox(&out, "Part added!", map[string]string{"UniqueId": "123456", "Skipped": "x"}, []string{"UniqueId", "Missing"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}

	if !strings.Contains(lines[3], "UniqueId: 123456") {
		t.Errorf("line = %q", lines[3])
	}

	for _, l := range lines {
		if n := len([]rune(l)); n != boxWidth {
			t.Errorf("line %q is %d runes wide, want %d", l, n, boxWidth)
		}
	}
}
