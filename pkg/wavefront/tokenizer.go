package wavefront

import (
	"bufio"
	"io"
	"strings"
)

// maxTokenLen is the longest token the scanner keeps. Longer tokens are
// silently truncated; the excess bytes are consumed but dropped.
const maxTokenLen = 128

// tokenizer scans whitespace-delimited tokens from a text stream. It
// remembers the byte that terminated the last token so callers can tell
// whether the current line has ended.
type tokenizer struct {
	r     *bufio.Reader
	delim byte // byte that terminated the last token, 0 at start or EOF
	eof   bool
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r)}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// next reads the following token. The token is empty when two delimiters
// are adjacent or the stream ends with no token bytes read.
func (t *tokenizer) next() string {
	var buf [maxTokenLen]byte
	n := 0
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			t.eof = true
			t.delim = 0
			return string(buf[:n])
		}
		if isSpace(c) {
			t.delim = c
			return string(buf[:n])
		}
		if n < maxTokenLen {
			buf[n] = c
			n++
		}
	}
}

// endOfLine reports whether the last token ended its line (or the stream).
func (t *tokenizer) endOfLine() bool {
	return t.eof || t.delim == '\n'
}

// nextToken returns the next non-empty token anywhere in the stream, or ""
// at end of stream.
func (t *tokenizer) nextToken() string {
	for !t.eof {
		if tok := t.next(); tok != "" {
			return tok
		}
	}
	return ""
}

// nextOnLine returns the next non-empty token on the current line, or ""
// if the line (or stream) ends first.
func (t *tokenizer) nextOnLine() string {
	for !t.endOfLine() {
		if tok := t.next(); tok != "" {
			return tok
		}
	}
	return ""
}

// restOfLine consumes the remainder of the current line and returns it
// with surrounding whitespace trimmed. Returns "" if the last token
// already ended the line.
func (t *tokenizer) restOfLine() string {
	if t.endOfLine() {
		return ""
	}
	line, err := t.r.ReadString('\n')
	if err != nil {
		t.eof = true
		t.delim = 0
	} else {
		t.delim = '\n'
	}
	return strings.TrimSpace(line)
}

// skipLine discards any payload remaining on the current line.
func (t *tokenizer) skipLine() {
	t.restOfLine()
}
