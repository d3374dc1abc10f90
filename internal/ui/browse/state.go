package browse

import "quizbank/internal/quiz"

// SortMode orders the browse table.
type SortMode int

const (
	SortByMisses SortMode = iota
	SortByQuestion
)

// String names the sort mode in the header.
func (m SortMode) String() string {
	if m == SortByQuestion {
		return "question"
	}
	return "misses"
}

// Row holds UI state for a single item.
type Row struct {
	Rank       int
	Question   string
	Answers    []string
	Hint       string
	WrongCount int
}

// State captures everything the browse view renders.
type State struct {
	Label    string
	Rows     []Row
	Selected int
	Revealed bool
	Sort     SortMode
}

// NewState builds rows from items in their given order.
func NewState(label string, items []*quiz.Item) State {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		rows = append(rows, Row{
			Rank:       i + 1,
			Question:   item.Question,
			Answers:    append([]string(nil), item.Answers...),
			Hint:       item.Hint,
			WrongCount: item.WrongCount,
		})
	}
	return State{Label: label, Rows: rows}
}

// Current returns the selected row, if any.
func (s State) Current() (Row, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Rows) {
		return Row{}, false
	}
	return s.Rows[s.Selected], true
}

// TotalMisses sums miss counts across rows.
func (s State) TotalMisses() int {
	total := 0
	for _, row := range s.Rows {
		total += row.WrongCount
	}
	return total
}
