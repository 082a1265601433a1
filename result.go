package ansinator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StyledCell is one rendered fragment paired with its style. Cells are
// appended in row-major order with a line terminator cell after each
// row.
type StyledCell struct {
	Text  string
	Style Style
}

// Result is the ordered styled-cell sequence produced by one
// conversion.
type Result struct {
	cells []StyledCell
}

// Cells returns the rendered cells in row-major order.
func (r *Result) Cells() []StyledCell {
	return r.cells
}

// String renders every cell into one string of ANSI escape text.
func (r *Result) String() string {
	var b strings.Builder
	b.Grow(len(r.cells) * 8)
	for _, c := range r.cells {
		c.Style.render(&b, c.Text)
	}
	return b.String()
}

// WriteTo writes the rendered escape text to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// Print writes the rendered text and a trailing newline to stdout.
func (r *Result) Print() {
	fmt.Println(r.String())
}

// Save writes the rendered text to a newly created file at path. The
// file is closed on every path out.
func (r *Result) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ansinator: creating save file %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := r.WriteTo(w); err != nil {
		return fmt.Errorf("ansinator: writing to save file %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("ansinator: writing to save file %q: %w", path, err)
	}

	return nil
}
