package session

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"quizbank/internal/quiz"
)

// Options configures a drill session.
type Options struct {
	// Label names the item source in headers and reports, e.g. "all".
	Label   string
	Rand    *rand.Rand
	Logger  *slog.Logger
	NoColor bool
	Now     func() time.Time
}

// Report summarizes a finished session.
type Report struct {
	ID        string
	Label     string
	Total     int
	Attempted int
	Correct   int
	Quit      bool
	Failed    []*quiz.Item
	StartedAt time.Time
	EndedAt   time.Time
}

// Percent returns the share of correct answers, or 0 when nothing was attempted.
func (r Report) Percent() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempted) * 100
}

// Session drills a shuffled copy of item handles. Items are shared with the
// store, so miss counts and new answers are visible to it without merging.
type Session struct {
	id     string
	label  string
	store  Store
	items  []*quiz.Item
	out    printer
	logger *slog.Logger
	now    func() time.Time

	failed     []*quiz.Item
	lastAnswer string
	anchor     Correction
}

// outcome of presenting one item.
type itemResult struct {
	points int
	quit   bool
}

// New prepares a session over items. The correction context always starts
// empty; anchors from earlier sessions are never carried in.
func New(store Store, items []*quiz.Item, opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	label := opts.Label
	if label == "" {
		label = "all"
	}
	shuffled := slices.Clone(items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	id := uuid.NewString()
	return &Session{
		id:     id,
		label:  label,
		store:  store,
		items:  shuffled,
		out:    printer{noColor: opts.NoColor},
		logger: logger.With("session", id),
		now:    now,
	}
}

// Items returns the drill order.
func (s *Session) Items() []*quiz.Item {
	return slices.Clone(s.items)
}

// Correction returns the anchor left by the last completed item.
func (s *Session) Correction() Correction {
	return s.anchor
}

// Run drills every item, reading answers from in and writing to out. The
// failed snapshot is replaced when the session ends.
func (s *Session) Run(in LineReader, out io.Writer) Report {
	s.out.out = out
	report := Report{ID: s.id, Label: s.label, Total: len(s.items), StartedAt: s.now()}
	if len(s.items) == 0 {
		s.out.notice("There are no %s items to drill.", s.label)
		report.EndedAt = s.now()
		return report
	}

	s.logger.Info("session started", "label", s.label, "items", len(s.items))
	s.out.line("")
	s.out.header("--- Drilling %s items ---", s.label)
	s.out.dim("  commands: !quit, !add, !typo, !hint")

	for i, item := range s.items {
		s.out.line("")
		s.out.header("--- Question %d/%d ---", i+1, len(s.items))
		result := s.ask(item, in)
		report.Correct += result.points
		if err := s.store.Save(); err != nil {
			s.out.notice("Could not save progress: %v", err)
		}
		if result.quit {
			report.Quit = true
			break
		}
		report.Attempted++
		s.anchor = Correction{Item: item, Answer: s.lastAnswer}
	}

	report.Failed = slices.Clone(s.failed)
	report.EndedAt = s.now()
	s.printReport(report)
	if err := s.store.SaveLastFailed(s.failed); err != nil {
		s.out.notice("Could not save failed items: %v", err)
	}
	s.logger.Info("session finished",
		"attempted", report.Attempted,
		"correct", report.Correct,
		"failed", len(report.Failed),
		"quit", report.Quit)
	return report
}

// ask presents one item and loops until it is answered or the user quits.
func (s *Session) ask(item *quiz.Item, in LineReader) itemResult {
	s.out.line("%s", item.Question)
	bonus := 0
	for {
		s.out.prompt("Answer: ")
		line, err := in.ReadLine()
		if err != nil && line == "" {
			if !errors.Is(err, io.EOF) {
				s.logger.Warn("read answer", "error", err)
			}
			s.out.line("")
			s.out.notice("Input ended; stopping the drill.")
			return itemResult{points: bonus, quit: true}
		}

		input := ParseInput(line)
		switch input.Kind {
		case InputQuit:
			s.out.notice("Stopping the drill.")
			return itemResult{points: bonus, quit: true}
		case InputAdd:
			if s.handleAdd() {
				bonus++
			}
		case InputTypo:
			s.handleTypo()
		case InputHint:
			if item.Hint != "" {
				s.out.dim("Hint: %s", item.Hint)
			} else {
				s.out.notice("This question has no hint.")
			}
		case InputUnknown:
			s.out.notice("Unknown command %q, or it cannot be used right now.", input.Text)
		case InputAnswer:
			s.lastAnswer = input.Text
			if item.HasAnswer(input.Text) {
				s.out.correct("Correct!")
				return itemResult{points: bonus + 1}
			}
			item.Miss()
			if !slices.Contains(s.failed, item) {
				s.failed = append(s.failed, item)
			}
			s.out.wrong("Wrong. Answer: %s", JoinAnswers(item.Answers))
			s.logger.Debug("answer missed", "question", item.Key(), "wrong_count", item.WrongCount)
			return itemResult{points: bonus}
		}
		if err != nil {
			s.out.line("")
			s.out.notice("Input ended; stopping the drill.")
			return itemResult{points: bonus, quit: true}
		}
	}
}

// handleAdd registers the previous answer as valid and reports whether a
// bonus point is due.
func (s *Session) handleAdd() bool {
	item := s.anchor.Item
	result, err := addAnswer(s.store, &s.anchor)
	s.logCorrection(result, err)
	switch result {
	case CorrectionAdded:
		s.anchor.consume()
		s.failed = slices.DeleteFunc(s.failed, func(candidate *quiz.Item) bool { return candidate == item })
		s.out.correct("Previous answer added as correct (misses now %d).", item.WrongCount)
		return true
	case CorrectionAlreadyRegistered:
		s.out.notice("That answer is already registered.")
	default:
		s.out.notice("Nothing to correct yet.")
	}
	return false
}

// handleTypo forgives the previous miss without adding an answer.
func (s *Session) handleTypo() {
	item := s.anchor.Item
	result, err := forgiveTypo(s.store, &s.anchor)
	s.logCorrection(result, err)
	if result != CorrectionTypo {
		s.out.notice("Nothing to correct yet.")
		return
	}
	s.anchor.consume()
	s.out.notice("Treated as a typo (misses now %d).", item.WrongCount)
}

func (s *Session) logCorrection(result CorrectionResult, err error) {
	if err != nil {
		s.logger.Error("persist correction", "result", result.String(), "error", err)
		s.out.notice("Could not save correction: %v", err)
		return
	}
	s.logger.Debug("correction applied", "result", result.String())
}

func (s *Session) printReport(report Report) {
	s.out.line("")
	s.out.header("--- Results ---")
	if report.Attempted == 0 {
		s.out.line("Nothing attempted.")
		return
	}
	s.out.line("%d of %d answered correctly (%.2f%%)", report.Correct, report.Attempted, report.Percent())
}
