package scp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	pkgerrors "github.com/pkg/errors"
)

// Format selects one of the two OR-Library layouts.
type Format string

const (
	// FormatRows lists all costs, then the sets covering each element.
	FormatRows Format = "rows"
	// FormatColumns lists each set's cost followed by its elements.
	FormatColumns Format = "columns"
)

var ErrUnsupportedFormat = errors.New("scp: unsupported instance format")

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatRows, FormatColumns:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, s)
}

type tokenReader struct {
	scanner *bufio.Scanner
	index   int
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner, index: -1}
}

// next returns the next integer in [lo, hi]; what names the expected value in errors.
func (t *tokenReader) next(what string, lo, hi int) (int, error) {
	t.index++
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return 0, &MalformedInputError{Location: t.index, Detail: err.Error()}
		}
		return 0, &MalformedInputError{Location: t.index, Detail: "unexpected end of input, expected " + what}
	}
	tok := t.scanner.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &MalformedInputError{Location: t.index, Detail: fmt.Sprintf("%s: %q is not an integer", what, tok)}
	}
	if v < lo || v > hi {
		return 0, &MalformedInputError{Location: t.index, Detail: fmt.Sprintf("%s: %d outside [%d, %d]", what, v, lo, hi)}
	}
	return v, nil
}

func (t *tokenReader) expectEOF() error {
	if t.scanner.Scan() {
		t.index++
		return &MalformedInputError{Location: t.index, Detail: fmt.Sprintf("unexpected trailing token %q", t.scanner.Text())}
	}
	if err := t.scanner.Err(); err != nil {
		return &MalformedInputError{Location: t.index + 1, Detail: err.Error()}
	}
	return nil
}

func (t *tokenReader) parseHeader() (n, m int, err error) {
	if n, err = t.next("number of elements", 0, MaxCost); err != nil {
		return 0, 0, err
	}
	if m, err = t.next("number of sets", 0, MaxCost); err != nil {
		return 0, 0, err
	}
	return n, m, nil
}

// parseList reads k distinct indices in [1, hi] and returns them 0-based.
// seen is cleared before use.
func (t *tokenReader) parseList(k, hi int, what string, seen map[int]struct{}) ([]int, error) {
	clear(seen)
	var list []int
	for range k {
		v, err := t.next(what, 1, hi)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[v]; ok {
			return nil, &MalformedInputError{Location: t.index, Detail: fmt.Sprintf("%d repeated, %s", v, what)}
		}
		seen[v] = struct{}{}
		list = append(list, v-1)
	}
	return list, nil
}

// parseRows returns the costs and, for every element, the sets covering it.
// Nothing is sized from the header: the slices grow as tokens arrive.
func (t *tokenReader) parseRows(n, m int) ([]int, [][]int, error) {
	var costs []int
	for c := range m {
		v, err := t.next(fmt.Sprintf("cost of set %d", c+1), 1, MaxCost)
		if err != nil {
			return nil, nil, err
		}
		costs = append(costs, v)
	}

	seen := make(map[int]struct{})
	var rows [][]int
	for r := range n {
		k, err := t.next(fmt.Sprintf("set count of element %d", r+1), 0, m)
		if err != nil {
			return nil, nil, err
		}
		row, err := t.parseList(k, m, fmt.Sprintf("set index for element %d", r+1), seen)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return costs, rows, nil
}

// parseColumns returns the costs and, for every set, the elements it contains.
func (t *tokenReader) parseColumns(n, m int) ([]int, [][]int, error) {
	seen := make(map[int]struct{})
	var costs []int
	var columns [][]int
	for c := range m {
		v, err := t.next(fmt.Sprintf("cost of set %d", c+1), 1, MaxCost)
		if err != nil {
			return nil, nil, err
		}
		costs = append(costs, v)

		k, err := t.next(fmt.Sprintf("element count of set %d", c+1), 0, n)
		if err != nil {
			return nil, nil, err
		}
		column, err := t.parseList(k, n, fmt.Sprintf("element index in set %d", c+1), seen)
		if err != nil {
			return nil, nil, err
		}
		columns = append(columns, column)
	}
	return costs, columns, nil
}

// ReadInstance parses an instance in the given format. Indices on disk are 1-based.
// The instance is only assembled once the whole stream has been read, so a
// header that promises more than the body delivers never allocates for it.
func ReadInstance(r io.Reader, format Format) (*Instance, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	t := newTokenReader(r)
	n, m, err := t.parseHeader()
	if err != nil {
		return nil, err
	}
	var costs []int
	var lists [][]int
	if format == FormatRows {
		costs, lists, err = t.parseRows(n, m)
	} else {
		costs, lists, err = t.parseColumns(n, m)
	}
	if err != nil {
		return nil, err
	}
	if err := t.expectEOF(); err != nil {
		return nil, err
	}

	inst := newInstance(n, m)
	copy(inst.Costs, costs)
	for i, list := range lists {
		for _, j := range list {
			if format == FormatRows {
				inst.addIncidence(i, j)
			} else {
				inst.addIncidence(j, i)
			}
		}
	}
	return inst, nil
}

// WriteInstance serializes inst in the given format.
func WriteInstance(w io.Writer, inst *Instance, format Format) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", inst.NumElements, inst.NumSubsets)
	if format == FormatRows {
		for _, x := range inst.Costs {
			fmt.Fprintf(bw, "%d ", x)
		}
		bw.WriteRune('\n')
		for _, row := range inst.Rows {
			fmt.Fprintf(bw, "%d\n", len(row))
			for _, c := range row {
				fmt.Fprintf(bw, "%d ", c+1)
			}
			bw.WriteRune('\n')
		}
	} else {
		for c, column := range inst.Columns {
			fmt.Fprintf(bw, "%d %d", inst.Costs[c], len(column))
			for _, r := range column {
				fmt.Fprintf(bw, " %d", r+1)
			}
			bw.WriteRune('\n')
		}
	}
	return bw.Flush()
}

func LoadInstance(filename string, format Format) (*Instance, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	inst, err := ReadInstance(bufio.NewReader(file), format)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading instance %s", filename)
	}
	return inst, nil
}

func SaveInstance(filename string, inst *Instance, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteInstance(file, inst, format); err != nil {
		file.Close()
		return pkgerrors.Wrapf(err, "writing instance %s", filename)
	}
	return file.Close()
}
