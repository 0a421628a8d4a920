// SPDX-License-Identifier: MIT
// Package edgelist reads and writes the plain-text graph format consumed by
// the MST tools:
//
//	V
//	E
//	u v w        (E lines, 1-based vertex ids, w with a fixed number of decimals)
//	# comment    (optional trailing footer, ignored by readers)
//
// Writers never reorder: lines follow EdgeSet insertion order.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/core"
)

// ErrMalformed indicates input that does not follow the edge-list format.
var ErrMalformed = errors.New("edgelist: malformed input")

// FileExt is the conventional extension of generated inputs.
const FileExt = ".g"

// maxPrealloc caps the edge capacity reserved from an unchecked header.
const maxPrealloc = 1 << 16

// footerTime formats the footer timestamp, e.g. "Friday 2026-Oct-16 at 09:30:00".
const footerTime = "Monday 2006-Jan-02 at 15:04:05"

// Write emits the header and one line per edge with precision decimals.
func Write(w io.Writer, set *core.EdgeSet, precision int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%d\n", set.Vertices(), set.Len()); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}
	for _, e := range set.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d %.*f\n", e.From+1, e.To+1, precision, e.Weight); err != nil {
			return fmt.Errorf("Write: edge %d-%d: %w", e.From+1, e.To+1, err)
		}
	}

	return bw.Flush()
}

// WriteFooter appends the trailing comment describing the run.
// MST readers stop after E edge lines and never see it.
func WriteFooter(w io.Writer, sum builder.Summary, now time.Time) error {
	_, err := fmt.Fprintf(w, "# %s: %s density=%.2f pom=%.2f\n",
		now.Format(footerTime), sum.About(), sum.Density, sum.PercentOfMax)
	if err != nil {
		return fmt.Errorf("WriteFooter: %w", err)
	}

	return nil
}

// Read parses an edge list back into an EdgeSet. Blank lines and lines
// starting with '#' are skipped. The header counts must match the body.
func Read(r io.Reader) (*core.EdgeSet, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	v, err := readCount(next, "vertex count", &lineNo)
	if err != nil {
		return nil, err
	}
	e, err := readCount(next, "edge count", &lineNo)
	if err != nil {
		return nil, err
	}
	if v < 1 {
		return nil, fmt.Errorf("Read: vertex count %d < 1: %w", v, ErrMalformed)
	}
	if e > core.CompleteEdges(v) {
		return nil, fmt.Errorf("Read: edge count %d exceeds V*(V-1)/2=%d: %w", e, core.CompleteEdges(v), ErrMalformed)
	}

	// The header is only a hint until the edges are read.
	set := core.NewEdgeSet(v, min(e, maxPrealloc))
	for i := 0; i < e; i++ {
		line, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("Read: %w", err)
			}
			return nil, fmt.Errorf("Read: got %d of %d edges: %w", i, e, ErrMalformed)
		}
		edge, err := parseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %v: %w", lineNo, err, ErrMalformed)
		}
		if !set.Add(edge) {
			return nil, fmt.Errorf("Read: line %d: loop, duplicate or out-of-range edge %q: %w", lineNo, line, ErrMalformed)
		}
	}
	if line, ok := next(); ok {
		return nil, fmt.Errorf("Read: line %d: trailing data %q: %w", lineNo, line, ErrMalformed)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return set, nil
}

func readCount(next func() (string, bool), what string, lineNo *int) (int, error) {
	line, ok := next()
	if !ok {
		return 0, fmt.Errorf("Read: missing %s: %w", what, ErrMalformed)
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("Read: line %d: bad %s %q: %w", *lineNo, what, line, ErrMalformed)
	}

	return n, nil
}

func parseEdge(line string) (core.Edge, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return core.Edge{}, fmt.Errorf("want 3 fields, got %d", len(f))
	}
	u, err := strconv.Atoi(f[0])
	if err != nil {
		return core.Edge{}, err
	}
	v, err := strconv.Atoi(f[1])
	if err != nil {
		return core.Edge{}, err
	}
	w, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return core.Edge{}, err
	}

	return core.Edge{From: u - 1, To: v - 1, Weight: w}, nil
}

// FileName returns the default path of a generated input:
// <dir>/<V>-<E>-<seed>.g, or <dir>/other-<seed>.g when the caller chose a
// custom weight model.
func FileName(dir string, v, e int, seed int64, custom bool) string {
	if custom {
		return filepath.Join(dir, fmt.Sprintf("other-%d%s", seed, FileExt))
	}

	return filepath.Join(dir, fmt.Sprintf("%d-%d-%d%s", v, e, seed, FileExt))
}
