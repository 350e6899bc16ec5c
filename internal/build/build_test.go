package build_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"masterlist/internal/build"
	"masterlist/internal/catalog"
	"masterlist/internal/source"
)

type stubSource struct {
	rows []catalog.Row
	err  error
}

func (s *stubSource) Rows(context.Context) ([]catalog.Row, error) {
	return s.rows, s.err
}

func TestRunKeepsOnlyValidRows(t *testing.T) {
	src := &stubSource{rows: []catalog.Row{
		{"ID": "1", "Name": "Kept", "Type": "horror"},
		{"Name": "No ID"},
		{"ID": "abc", "Name": "Bad ID"},
	}}

	result, err := (&build.Runner{Source: src}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Rows != 3 {
		t.Errorf("Rows = %d, want 3", result.Rows)
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
	if len(result.Catalog.Audios) != 1 {
		t.Fatalf("got %d entries, want 1", len(result.Catalog.Audios))
	}
	if result.Catalog.Audios[0].Title != "Kept" {
		t.Errorf("Title = %q", result.Catalog.Audios[0].Title)
	}
}

func TestRunPreservesRowOrder(t *testing.T) {
	src := &stubSource{rows: []catalog.Row{
		{"ID": "30", "Name": "Third... in the sheet"},
		{"ID": "10", "Name": "First"},
		{"ID": "20", "Name": "Second"},
	}}

	result, err := (&build.Runner{Source: src}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := make([]int, 0, len(result.Catalog.Audios))
	for _, e := range result.Catalog.Audios {
		got = append(got, e.ID)
	}
	want := []int{30, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRunPropagatesSourceFailure(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	if _, err := (&build.Runner{Source: src}).Run(context.Background()); err == nil {
		t.Fatal("expected source error to propagate")
	}
}

func TestRunEmptySourceYieldsEmptyCatalog(t *testing.T) {
	result, err := (&build.Runner{Source: &stubSource{}}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Catalog.Audios == nil {
		t.Fatal("Audios must be non-nil even when empty")
	}
	if len(result.Catalog.Audios) != 0 {
		t.Fatalf("got %d entries, want 0", len(result.Catalog.Audios))
	}
}

func TestBuildIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "export.csv")
	csvData := "ID,Name,Type,Tags,Date\n" +
		"1,Premiere,horror,[Fluff],2023-05-01 14:30:00\n" +
		"2,Encore,,[Angst][Fluff],\n" +
		",,,,\n"
	if err := os.WriteFile(csvPath, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &build.Runner{Source: &source.File{Path: csvPath}}

	outputs := make([][]byte, 2)
	for i := range outputs {
		result, err := runner.Run(context.Background())
		if err != nil {
			t.Fatalf("Run %d: %v", i, err)
		}
		out := filepath.Join(dir, "audios.json")
		if err := result.Catalog.WriteFile(out); err != nil {
			t.Fatalf("WriteFile %d: %v", i, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		outputs[i] = data
	}

	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Fatal("two builds over the same source were not byte-identical")
	}
}
