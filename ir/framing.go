package ir

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Start and end markers wrapping one JSON-encoded Output in a concatenated
// compilation unit (§6).
const (
	blockStart = "// ladder_block_start"
	blockEnd   = "// ladder_block_end"
)

// WriteFramed marshals out and writes it to w wrapped between the literal
// marker lines, byte-exact with a trailing newline after each marker.
func WriteFramed(w io.Writer, out *Output) error {
	body, err := Marshal(out)
	if err != nil {
		return fmt.Errorf("ir: marshal output: %w", err)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, blockStart); err != nil {
		return err
	}
	if _, err := bw.Write(body); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, blockEnd); err != nil {
		return err
	}
	return bw.Flush()
}

// ErrMissingStartMarker and ErrMissingEndMarker report a malformed framed
// block.
var (
	ErrMissingStartMarker = fmt.Errorf("ir: missing %q marker", blockStart)
	ErrMissingEndMarker   = fmt.Errorf("ir: missing %q marker", blockEnd)
)

// ReadFramed scans r for one framed block (the first blockStart/blockEnd
// pair) and unmarshals the JSON body between them. It does not attempt to
// recover multiple blocks from a concatenated unit; callers needing that
// scan with a bufio.Scanner themselves and feed each slice to ReadFramed.
func ReadFramed(r io.Reader) (*Output, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var body bytes.Buffer
	inBlock := false
	sawEnd := false

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case !inBlock && line == blockStart:
			inBlock = true
		case inBlock && line == blockEnd:
			sawEnd = true
			inBlock = false
		case inBlock:
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawEnd && !inBlock {
		return nil, ErrMissingStartMarker
	}
	if inBlock {
		return nil, ErrMissingEndMarker
	}

	var out Output
	if err := unmarshal(body.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("ir: unmarshal framed body: %w", err)
	}
	return &out, nil
}
