package session

import (
	"fmt"
	"strings"
)

// CommandPrefix marks an in-band command instead of an answer.
const CommandPrefix = "!"

// InputKind tags one line typed at the answer prompt.
type InputKind int

const (
	InputAnswer InputKind = iota
	InputQuit
	InputAdd
	InputTypo
	InputHint
	InputUnknown
)

// String returns the command name for logs.
func (k InputKind) String() string {
	switch k {
	case InputAnswer:
		return "answer"
	case InputQuit:
		return "quit"
	case InputAdd:
		return "add"
	case InputTypo:
		return "typo"
	case InputHint:
		return "hint"
	case InputUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("input(%d)", int(k))
	}
}

// Input is a classified prompt line. Text holds the trimmed answer for
// InputAnswer and the case-folded command word otherwise.
type Input struct {
	Kind InputKind
	Text string
}

var commandWords = map[string]InputKind{
	"quit": InputQuit,
	"exit": InputQuit,
	"종료":   InputQuit,
	"add":  InputAdd,
	"추가":   InputAdd,
	"typo": InputTypo,
	"오타":   InputTypo,
	"hint": InputHint,
	"힌트":   InputHint,
}

// ParseInput classifies a raw prompt line.
func ParseInput(line string) Input {
	text := strings.TrimSpace(line)
	if !strings.HasPrefix(text, CommandPrefix) {
		return Input{Kind: InputAnswer, Text: text}
	}
	word := strings.ToLower(strings.TrimSpace(text[len(CommandPrefix):]))
	if kind, ok := commandWords[word]; ok {
		return Input{Kind: kind, Text: word}
	}
	return Input{Kind: InputUnknown, Text: word}
}
