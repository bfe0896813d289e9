package scanfilter

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, []float32{5, 9, 8.5}); err != nil {
		t.Fatal(err)
	}
	want := "Output array: \n5.000000\n9.000000\n8.500000\n"
	if buf.String() != want {
		t.Errorf("report = %q, want %q", buf.String(), want)
	}
}

func TestWriteReportNoResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport[float32](&buf, nil); err != nil {
		t.Fatal(err)
	}
	want := "Output array: \nNo results found.\n"
	if buf.String() != want {
		t.Errorf("report = %q, want %q", buf.String(), want)
	}
}

func TestWriteReportIntegers(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, []int64{-1, 42}); err != nil {
		t.Fatal(err)
	}
	if want := "Output array: \n-1\n42\n"; buf.String() != want {
		t.Errorf("report = %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportPropagatesWriteError(t *testing.T) {
	if err := WriteReport(failingWriter{}, []float64{1}); err == nil {
		t.Error("expected write error")
	}
}
