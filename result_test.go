package ansinator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleResult() *Result {
	return &Result{cells: []StyledCell{
		{Text: "⠸", Style: Style{Bold: true}},
		{Text: "⣿", Style: Style{Bold: true}},
		{Text: "\n"},
	}}
}

func TestResultString(t *testing.T) {
	got := sampleResult().String()
	want := "\x1b[1m⠸\x1b[0m\x1b[1m⣿\x1b[0m\n"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestResultCells(t *testing.T) {
	r := sampleResult()
	cells := r.Cells()
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(cells))
	}
	if cells[2].Text != "\n" || cells[2].Style != (Style{}) {
		t.Fatalf("terminator cell = %+v, want bare newline", cells[2])
	}
}

func TestResultWriteTo(t *testing.T) {
	r := sampleResult()

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if want := r.String(); buf.String() != want {
		t.Fatalf("WriteTo wrote %q, want %q", buf.String(), want)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
}

func TestResultSave(t *testing.T) {
	r := sampleResult()
	path := filepath.Join(t.TempDir(), "art.txt")

	if err := r.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != r.String() {
		t.Fatalf("saved %q, want %q", data, r.String())
	}
}

func TestResultSaveCreateError(t *testing.T) {
	r := sampleResult()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "art.txt")

	err := r.Save(path)
	if err == nil {
		t.Fatal("Save into a missing directory succeeded")
	}
	if !strings.Contains(err.Error(), "creating save file") {
		t.Fatalf("error %q does not mention the create step", err)
	}
}
