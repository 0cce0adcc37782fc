package scp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// WriteSolution emits the solution report: count, cost, 1-based sets and runtime in seconds.
func WriteSolution(w io.Writer, sol *Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Number of sets: %d\n", len(sol.Selected))
	fmt.Fprintf(bw, "Total cost: %d\n", sol.TotalCost)
	fmt.Fprintln(bw, "Sets selected:")
	for i, c := range sol.Selected {
		if i > 0 {
			bw.WriteRune(' ')
		}
		bw.WriteString(strconv.Itoa(c))
	}
	bw.WriteRune('\n')
	fmt.Fprintf(bw, "Runtime (s): %s\n", strconv.FormatFloat(sol.Runtime.Seconds(), 'f', -1, 64))
	return bw.Flush()
}

// ReadSolution parses a report written by WriteSolution. Location in errors is the line number.
func ReadSolution(r io.Reader) (*Solution, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<26)
	line := 0
	nextLine := func(what string) (string, error) {
		line++
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", &MalformedInputError{Location: line, Detail: err.Error()}
			}
			return "", &MalformedInputError{Location: line, Detail: "unexpected end of input, expected " + what}
		}
		return strings.TrimSpace(scanner.Text()), nil
	}
	field := func(prefix string) (string, error) {
		text, err := nextLine(prefix)
		if err != nil {
			return "", err
		}
		v, ok := strings.CutPrefix(text, prefix)
		if !ok {
			return "", &MalformedInputError{Location: line, Detail: fmt.Sprintf("expected %q, got %q", prefix, text)}
		}
		return strings.TrimSpace(v), nil
	}

	sol := new(Solution)
	v, err := field("Number of sets:")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(v)
	if err != nil || count < 0 {
		return nil, &MalformedInputError{Location: line, Detail: fmt.Sprintf("bad set count %q", v)}
	}
	if v, err = field("Total cost:"); err != nil {
		return nil, err
	}
	if sol.TotalCost, err = strconv.ParseInt(v, 10, 64); err != nil {
		return nil, &MalformedInputError{Location: line, Detail: fmt.Sprintf("bad total cost %q", v)}
	}
	if _, err = field("Sets selected:"); err != nil {
		return nil, err
	}
	text, err := nextLine("selected sets")
	if err != nil {
		return nil, err
	}
	for _, tok := range strings.Fields(text) {
		c, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &MalformedInputError{Location: line, Detail: fmt.Sprintf("bad set index %q", tok)}
		}
		sol.Selected = append(sol.Selected, c)
	}
	if len(sol.Selected) != count {
		return nil, &MalformedInputError{Location: line, Detail: fmt.Sprintf("%d sets listed, header says %d", len(sol.Selected), count)}
	}
	if v, err = field("Runtime (s):"); err != nil {
		return nil, err
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, &MalformedInputError{Location: line, Detail: fmt.Sprintf("bad runtime %q", v)}
	}
	sol.Runtime = time.Duration(secs * float64(time.Second))
	return sol, nil
}

func SaveSolution(filename string, sol *Solution) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteSolution(file, sol); err != nil {
		file.Close()
		return pkgerrors.Wrapf(err, "writing solution %s", filename)
	}
	return file.Close()
}
