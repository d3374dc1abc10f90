package quiz

import (
	"bufio"
	"io"
	"strings"
)

// batchTerminator ends an item in the flat batch format.
const batchTerminator = "== "

// ParseBatch reads the flat batch format: body lines accumulate until a line
// starting with "== " closes the item with its "||"-separated answers.
// A terminator with no accumulated body is ignored, as is a trailing body
// without a terminator.
func ParseBatch(r io.Reader) ([]Parsed, error) {
	var (
		items []Parsed
		body  strings.Builder
	)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if strings.HasPrefix(line, batchTerminator) {
				if question := strings.TrimSpace(body.String()); question != "" {
					items = append(items, Parsed{
						Question: question,
						Answers:  SplitAnswers(strings.TrimSpace(line[len(batchTerminator):])),
					})
					body.Reset()
				}
			} else {
				body.WriteString(line)
			}
		}
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
