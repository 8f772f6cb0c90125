package replay

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type of a result entry.
type Kind int

const (
	KindScreenChange Kind = iota
	KindLostLife
	KindRiddle
	KindGameEnd
)

func (k Kind) String() string {
	switch k {
	case KindScreenChange:
		return "ScreenChange"
	case KindLostLife:
		return "LostLife"
	case KindRiddle:
		return "Riddle"
	case KindGameEnd:
		return "GameEnd"
	default:
		return "Unknown"
	}
}

// Result is one observable outcome of a run. Only the fields of its kind
// are meaningful.
type Result struct {
	Cycle    uint64
	Kind     Kind
	Room     int    // ScreenChange
	Question string // Riddle
	Answer   string // Riddle
	Correct  bool   // Riddle
	Score    int    // GameEnd
}

// Equal compares the cycle and the payload of the kind.
func (r Result) Equal(o Result) bool {
	if r.Cycle != o.Cycle || r.Kind != o.Kind {
		return false
	}
	switch r.Kind {
	case KindScreenChange:
		return r.Room == o.Room
	case KindRiddle:
		return r.Question == o.Question && r.Answer == o.Answer && r.Correct == o.Correct
	case KindGameEnd:
		return r.Score == o.Score
	default:
		return true
	}
}

// String formats the entry as a results file line.
func (r Result) String() string {
	switch r.Kind {
	case KindScreenChange:
		return fmt.Sprintf("%d %s %d", r.Cycle, r.Kind, r.Room)
	case KindRiddle:
		correct := 0
		if r.Correct {
			correct = 1
		}
		return fmt.Sprintf("%d %s %s %s %d", r.Cycle, r.Kind, strconv.Quote(r.Question), strconv.Quote(r.Answer), correct)
	case KindGameEnd:
		return fmt.Sprintf("%d %s %d", r.Cycle, r.Kind, r.Score)
	default:
		return fmt.Sprintf("%d %s", r.Cycle, r.Kind)
	}
}

// ParseResult parses one results file line.
func ParseResult(line string) (Result, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return Result{}, fmt.Errorf("expected \"<cycle> <type> ...\"")
	}
	cycle, err := strconv.ParseUint(f[0], 10, 64)
	if err != nil {
		return Result{}, fmt.Errorf("bad cycle %q", f[0])
	}
	r := Result{Cycle: cycle}

	switch f[1] {
	case "ScreenChange":
		r.Kind = KindScreenChange
		if len(f) != 3 {
			return r, fmt.Errorf("ScreenChange needs a room id")
		}
		if r.Room, err = strconv.Atoi(f[2]); err != nil {
			return r, fmt.Errorf("bad room id %q", f[2])
		}
	case "LostLife":
		r.Kind = KindLostLife
	case "GameEnd":
		r.Kind = KindGameEnd
		if len(f) != 3 {
			return r, fmt.Errorf("GameEnd needs a score")
		}
		if r.Score, err = strconv.Atoi(f[2]); err != nil {
			return r, fmt.Errorf("bad score %q", f[2])
		}
	case "Riddle":
		r.Kind = KindRiddle
		rest := strings.TrimSpace(line[strings.Index(line, "Riddle")+len("Riddle"):])
		if r.Question, rest, err = quoted(rest); err != nil {
			return r, fmt.Errorf("riddle question: %w", err)
		}
		if r.Answer, rest, err = quoted(rest); err != nil {
			return r, fmt.Errorf("riddle answer: %w", err)
		}
		switch rest {
		case "0":
		case "1":
			r.Correct = true
		default:
			return r, fmt.Errorf("riddle verdict must be 0 or 1, got %q", rest)
		}
	default:
		return r, fmt.Errorf("unknown result type %q", f[1])
	}
	return r, nil
}

// quoted splits a leading double-quoted string off s.
func quoted(s string) (string, string, error) {
	prefix, err := strconv.QuotedPrefix(s)
	if err != nil {
		return "", s, err
	}
	text, err := strconv.Unquote(prefix)
	if err != nil {
		return "", s, err
	}
	return text, strings.TrimSpace(s[len(prefix):]), nil
}

// Compare checks actual results against the expected ones entry by entry.
func Compare(expected, actual []Result) error {
	for i := 0; i < len(expected) && i < len(actual); i++ {
		if !expected[i].Equal(actual[i]) {
			return fmt.Errorf("replay: result %d differs: expected %q, got %q", i+1, expected[i], actual[i])
		}
	}
	if len(expected) != len(actual) {
		return fmt.Errorf("replay: expected %d results, got %d", len(expected), len(actual))
	}
	return nil
}
