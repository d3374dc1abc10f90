package browse

import (
	"cmp"
	"slices"
	"strings"
)

// ActionKind identifies a user action on the browse view.
type ActionKind int

const (
	ActionSelect ActionKind = iota
	ActionToggleAnswer
	ActionCycleSort
)

// Action is one state transition request.
type Action struct {
	Kind  ActionKind
	Index int
}

// Reduce applies an action to state and returns the updated state.
func Reduce(state State, action Action) State {
	switch action.Kind {
	case ActionSelect:
		if len(state.Rows) == 0 {
			state.Selected = 0
			return state
		}
		index := min(max(action.Index, 0), len(state.Rows)-1)
		if index != state.Selected {
			state.Revealed = false
		}
		state.Selected = index
	case ActionToggleAnswer:
		if _, ok := state.Current(); ok {
			state.Revealed = !state.Revealed
		}
	case ActionCycleSort:
		state.Rows = slices.Clone(state.Rows)
		if state.Sort == SortByMisses {
			state.Sort = SortByQuestion
			slices.SortStableFunc(state.Rows, func(a, b Row) int {
				return strings.Compare(strings.ToLower(a.Question), strings.ToLower(b.Question))
			})
		} else {
			state.Sort = SortByMisses
			slices.SortStableFunc(state.Rows, func(a, b Row) int {
				if a.WrongCount != b.WrongCount {
					return cmp.Compare(b.WrongCount, a.WrongCount)
				}
				return cmp.Compare(a.Rank, b.Rank)
			})
		}
		state.Selected = 0
		state.Revealed = false
	}
	return state
}
