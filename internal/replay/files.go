// Package replay records a game as a steps file (the keys pressed and when)
// and a results file (what happened and when), and plays a recording back
// against the engine to check that it produces the same results.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Default file names.
const (
	StepsFile   = "adv-world.steps"
	ResultsFile = "adv-world.results"
)

const (
	runMarker     = "# run"
	screensMarker = "# screens"
	stepsMarker   = "# steps"
	resultsMarker = "# results"
)

// Header is shared by both files: the run id and the room files the run
// was played on.
type Header struct {
	RunID   string
	Screens []string
}

func (h Header) write(w *bufio.Writer) {
	if h.RunID != "" {
		fmt.Fprintf(w, "%s %s\n", runMarker, h.RunID)
	}
	fmt.Fprintln(w, screensMarker)
	for _, s := range h.Screens {
		fmt.Fprintln(w, s)
	}
}

// CheckScreens reports whether the recording was made on the given room
// files.
func (h Header) CheckScreens(files []string) error {
	if len(h.Screens) != len(files) {
		return fmt.Errorf("replay: recorded on %d screens, world has %d", len(h.Screens), len(files))
	}
	for i, s := range h.Screens {
		if s != files[i] {
			return fmt.Errorf("replay: screen %d is %q in the recording, %q in the world", i+1, s, files[i])
		}
	}
	return nil
}

// Step is one recorded key press.
type Step struct {
	Cycle uint64
	Key   rune
}

// Steps is the content of a steps file.
type Steps struct {
	Header
	Steps []Step
}

// Add appends a key press.
func (s *Steps) Add(cycle uint64, key rune) {
	s.Steps = append(s.Steps, Step{Cycle: cycle, Key: key})
}

// Write writes the steps file format.
func (s *Steps) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	s.Header.write(bw)
	fmt.Fprintln(bw, stepsMarker)
	for _, st := range s.Steps {
		fmt.Fprintf(bw, "%d %c\n", st.Cycle, st.Key)
	}
	return bw.Flush()
}

// ReadSteps parses a steps file.
func ReadSteps(r io.Reader) (*Steps, error) {
	s := &Steps{}
	err := readFile(r, stepsMarker, &s.Header, func(line string) error {
		f := strings.Fields(line)
		if len(f) != 2 {
			return fmt.Errorf("expected \"<cycle> <key>\"")
		}
		cycle, err := strconv.ParseUint(f[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad cycle %q", f[0])
		}
		key := []rune(f[1])
		if len(key) != 1 {
			return fmt.Errorf("bad key %q", f[1])
		}
		if n := len(s.Steps); n > 0 && s.Steps[n-1].Cycle > cycle {
			return fmt.Errorf("cycle %d goes back in time", cycle)
		}
		s.Add(cycle, key[0])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Results is the content of a results file.
type Results struct {
	Header
	Entries []Result
}

// Write writes the results file format.
func (r *Results) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	r.Header.write(bw)
	fmt.Fprintln(bw, resultsMarker)
	for _, e := range r.Entries {
		fmt.Fprintln(bw, e.String())
	}
	return bw.Flush()
}

// ReadResults parses a results file.
func ReadResults(r io.Reader) (*Results, error) {
	res := &Results{}
	err := readFile(r, resultsMarker, &res.Header, func(line string) error {
		e, err := ParseResult(line)
		if err != nil {
			return err
		}
		res.Entries = append(res.Entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// readFile parses the shared header, then hands every non-blank body line
// to entry.
func readFile(r io.Reader, bodyMarker string, h *Header, entry func(line string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	inScreens, inBody := false, false
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case inBody:
			if err := entry(line); err != nil {
				return fmt.Errorf("replay: line %d: %w", lineNo, err)
			}
		case line == bodyMarker:
			inBody = true
		case line == screensMarker:
			inScreens = true
		case strings.HasPrefix(line, runMarker+" ") && !inScreens:
			h.RunID = strings.TrimSpace(strings.TrimPrefix(line, runMarker))
		case inScreens:
			h.Screens = append(h.Screens, strings.TrimSpace(line))
		default:
			return fmt.Errorf("replay: line %d: expected %q", lineNo, screensMarker)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("replay: read: %w", err)
	}
	if !inBody {
		return fmt.Errorf("replay: missing %q section", bodyMarker)
	}
	return nil
}

// LoadSteps reads a steps file from disk.
func LoadSteps(path string) (*Steps, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return ReadSteps(f)
}

// LoadResults reads a results file from disk.
func LoadResults(path string) (*Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return ReadResults(f)
}

// saveFile creates path and writes it with write.
func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("replay: close %s: %w", path, err)
	}
	return nil
}
