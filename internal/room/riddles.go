package room

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// RiddleRecord is one entry of a riddles file.
type RiddleRecord struct {
	RoomID   int
	Pos      core.Point
	Question string
	Answer   string
}

// ParseRiddles reads 3-line records: "roomID x y", the question and the
// answer. Blank lines between records are ignored.
func ParseRiddles(name string, data []byte) ([]RiddleRecord, error) {
	var out []RiddleRecord
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	for {
		header, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(header) == "" {
			continue
		}
		f := strings.Fields(header)
		if len(f) != 3 {
			return nil, &ParseError{File: name, Line: line, Msg: "expected \"roomID x y\""}
		}
		var nums [3]int
		for i, tok := range f {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{File: name, Line: line, Msg: fmt.Sprintf("%q is not a number", tok)}
			}
			nums[i] = n
		}
		question, ok := next()
		if !ok {
			return nil, &ParseError{File: name, Line: line, Msg: "missing question"}
		}
		answer, ok := next()
		if !ok {
			return nil, &ParseError{File: name, Line: line, Msg: "missing answer"}
		}
		out = append(out, RiddleRecord{
			RoomID:   nums[0],
			Pos:      core.P(nums[1], nums[2]),
			Question: strings.TrimSpace(question),
			Answer:   strings.TrimSpace(answer),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("room: read %s: %w", name, err)
	}
	return out, nil
}

// ApplyRiddles binds the records addressed to this room to its riddles.
func (r *Room) ApplyRiddles(records []RiddleRecord) error {
	for _, rec := range records {
		if rec.RoomID != r.ID {
			continue
		}
		q := r.RiddleAt(rec.Pos)
		if q == nil {
			return fmt.Errorf("room: riddle record refers to non-existing riddle in room %d at %v", r.ID, rec.Pos)
		}
		q.Question = rec.Question
		q.Answer = rec.Answer
	}
	return nil
}
