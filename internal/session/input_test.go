package session

import (
	"bufio"
	"io"
	"strings"
	"testing"
)

// TestParseInput verifies command words and answers are told apart.
func TestParseInput(t *testing.T) {
	cases := []struct {
		line string
		want Input
	}{
		{"  Paris ", Input{Kind: InputAnswer, Text: "Paris"}},
		{"", Input{Kind: InputAnswer, Text: ""}},
		{"!quit", Input{Kind: InputQuit, Text: "quit"}},
		{"!EXIT", Input{Kind: InputQuit, Text: "exit"}},
		{"!종료", Input{Kind: InputQuit, Text: "종료"}},
		{" !add ", Input{Kind: InputAdd, Text: "add"}},
		{"!추가", Input{Kind: InputAdd, Text: "추가"}},
		{"!typo", Input{Kind: InputTypo, Text: "typo"}},
		{"!오타", Input{Kind: InputTypo, Text: "오타"}},
		{"!Hint", Input{Kind: InputHint, Text: "hint"}},
		{"!힌트", Input{Kind: InputHint, Text: "힌트"}},
		{"!nope", Input{Kind: InputUnknown, Text: "nope"}},
		{"!", Input{Kind: InputUnknown, Text: ""}},
	}
	for _, tc := range cases {
		if got := ParseInput(tc.line); got != tc.want {
			t.Fatalf("ParseInput(%q) = %+v, want %+v", tc.line, got, tc.want)
		}
	}
}

// TestLineReaderTrimsEndings verifies CRLF handling and the final line.
func TestLineReaderTrimsEndings(t *testing.T) {
	reader := NewLineReader(strings.NewReader("one\r\ntwo\nthree"))
	for _, want := range []string{"one", "two"} {
		line, err := reader.ReadLine()
		if err != nil || line != want {
			t.Fatalf("ReadLine = %q, %v; want %q", line, err, want)
		}
	}
	line, err := reader.ReadLine()
	if line != "three" || err != io.EOF {
		t.Fatalf("final ReadLine = %q, %v", line, err)
	}
	line, err = reader.ReadLine()
	if line != "" || err != io.EOF {
		t.Fatalf("ReadLine after EOF = %q, %v", line, err)
	}
}

// TestReadLineSharesBuffer verifies menu prompts and a session can read from
// one buffered reader without losing lines.
func TestReadLineSharesBuffer(t *testing.T) {
	buffered := bufio.NewReader(strings.NewReader("1\nParis\n0\n"))
	if line, err := ReadLine(buffered); err != nil || line != "1" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
	if line, err := NewLineReader(buffered).ReadLine(); err != nil || line != "Paris" {
		t.Fatalf("session ReadLine = %q, %v", line, err)
	}
	if line, err := ReadLine(buffered); err != nil || line != "0" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
}
