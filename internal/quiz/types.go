package quiz

import (
	"errors"
	"slices"
	"strings"
)

// ErrNoItems indicates the collection holds no items at all.
var ErrNoItems = errors.New("no quiz items")

// ErrNoneFailed indicates no item has been missed yet.
var ErrNoneFailed = errors.New("no failed quiz items")

// ErrDuplicateQuestion indicates an item with the same key already exists.
var ErrDuplicateQuestion = errors.New("duplicate question")

// Item is a single question with its accepted answers and miss count.
type Item struct {
	Question   string   `json:"question"`
	Answers    []string `json:"answers"`
	WrongCount int      `json:"wrong_count"`
	Hint       string   `json:"hint,omitempty"`
}

// Key returns the identity key of a question.
func Key(question string) string {
	return strings.TrimSpace(question)
}

// Key returns the identity key of the item.
func (item *Item) Key() string {
	return Key(item.Question)
}

// HasAnswer reports whether answer is registered exactly as given.
func (item *Item) HasAnswer(answer string) bool {
	return slices.Contains(item.Answers, answer)
}

// AddAnswer appends answer unless it is already registered.
func (item *Item) AddAnswer(answer string) bool {
	if answer == "" || item.HasAnswer(answer) {
		return false
	}
	item.Answers = append(item.Answers, answer)
	return true
}

// Miss records one incorrect attempt.
func (item *Item) Miss() {
	item.WrongCount++
}

// Forgive lowers the miss count by one, never below zero.
func (item *Item) Forgive() bool {
	if item.WrongCount <= 0 {
		item.WrongCount = 0
		return false
	}
	item.WrongCount--
	return true
}

// Collection is an ordered set of items indexed by question key.
type Collection struct {
	items []*Item
	index map[string]*Item
}

// NewCollection builds a collection from items, keeping the first item per key.
func NewCollection(items ...*Item) *Collection {
	c := &Collection{index: map[string]*Item{}}
	for _, item := range items {
		_ = c.Add(item)
	}
	return c
}

// Len returns the number of items.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns the item handles in insertion order.
func (c *Collection) Items() []*Item {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Get looks an item up by question key.
func (c *Collection) Get(question string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	item, ok := c.index[Key(question)]
	return item, ok
}

// Add appends an item unless its key is already taken.
func (c *Collection) Add(item *Item) error {
	if item == nil {
		return nil
	}
	if c.index == nil {
		c.index = map[string]*Item{}
	}
	key := item.Key()
	if _, exists := c.index[key]; exists {
		return ErrDuplicateQuestion
	}
	c.index[key] = item
	c.items = append(c.items, item)
	return nil
}

// Failed returns missed items ordered by miss count, highest first.
// Items with equal counts keep their collection order.
func (c *Collection) Failed() ([]*Item, error) {
	if c.Len() == 0 {
		return nil, ErrNoItems
	}
	failed := make([]*Item, 0, len(c.items))
	for _, item := range c.items {
		if item.WrongCount >= 1 {
			failed = append(failed, item)
		}
	}
	if len(failed) == 0 {
		return nil, ErrNoneFailed
	}
	slices.SortStableFunc(failed, func(a, b *Item) int {
		return b.WrongCount - a.WrongCount
	})
	return failed, nil
}
