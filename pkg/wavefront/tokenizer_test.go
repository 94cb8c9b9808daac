package wavefront

import (
	"strings"
	"testing"
)

func TestTokenizerNextToken(t *testing.T) {
	tok := newTokenizer(strings.NewReader("v  1.0\t2.0\r\n3.0"))

	want := []string{"v", "1.0", "2.0", "3.0"}
	for _, w := range want {
		if got := tok.nextToken(); got != w {
			t.Errorf("nextToken() = %q, want %q", got, w)
		}
	}
	if got := tok.nextToken(); got != "" {
		t.Errorf("nextToken() at EOF = %q, want \"\"", got)
	}
	if !tok.eof {
		t.Error("expected eof after stream end")
	}
}

func TestTokenizerTruncation(t *testing.T) {
	long := strings.Repeat("a", 300)
	tok := newTokenizer(strings.NewReader(long + " next"))

	got := tok.nextToken()
	if len(got) != maxTokenLen {
		t.Errorf("truncated token length = %d, want %d", len(got), maxTokenLen)
	}
	if got != strings.Repeat("a", maxTokenLen) {
		t.Error("truncated token has wrong content")
	}
	// the excess bytes are dropped, not turned into a second token
	if next := tok.nextToken(); next != "next" {
		t.Errorf("token after truncated one = %q, want %q", next, "next")
	}
}

func TestTokenizerEndOfLine(t *testing.T) {
	tok := newTokenizer(strings.NewReader("f 1 2\ng"))

	tok.nextToken() // f
	if tok.endOfLine() {
		t.Error("endOfLine() true after mid-line token")
	}
	if got := tok.nextOnLine(); got != "1" {
		t.Errorf("nextOnLine() = %q, want %q", got, "1")
	}
	if got := tok.nextOnLine(); got != "2" {
		t.Errorf("nextOnLine() = %q, want %q", got, "2")
	}
	if got := tok.nextOnLine(); got != "" {
		t.Errorf("nextOnLine() past line end = %q, want \"\"", got)
	}
	if got := tok.nextToken(); got != "g" {
		t.Errorf("nextToken() on next line = %q, want %q", got, "g")
	}
}

func TestTokenizerRestOfLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims surrounding space", "usemtl   brushed metal  \nf", "brushed metal"},
		{"empty payload", "usemtl\nf", ""},
		{"no trailing newline", "usemtl wood", "wood"},
		{"carriage return", "usemtl wood\r\nf", "wood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := newTokenizer(strings.NewReader(tt.input))
			tok.nextToken() // usemtl
			if got := tok.restOfLine(); got != tt.want {
				t.Errorf("restOfLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
