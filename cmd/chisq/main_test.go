package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/biodistance/traittable"
)

func writeFiles(t *testing.T, files map[string]string) map[string]string {
	t.Helper()

	dir := t.TempDir()
	out := make(map[string]string)
	for name, contents := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
		out[name] = path
	}

	return out
}

func TestRun(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"X.csv": "ID,Sex,1a,2b\nA,M,1,1\nB,F,1,0\nC,F,1,1\nD,M,0,2\n\n",
		"Y.csv": "ID,Sex,1a,2b\nE,M,0,2\nF,F,0,2\nG,M,0,2\nH,F,0,9\n",
	})

	var buf bytes.Buffer
	if err := run(context.Background(), &buf, []string{paths["X.csv"], paths["Y.csv"]}, traittable.Options{}, false); err != nil {
		t.Fatal(err)
	}

	want := ",1a,,2b,\nX/Y,4.8,0.7745966692414834,,\nSignificant,1,,0,\n"
	if buf.String() != want {
		t.Fatalf("Got:\n%s\nExpected:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := run(context.Background(), &buf, []string{paths["X.csv"], paths["Y.csv"]}, traittable.Options{}, true); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "pair,trait,") {
		t.Fatalf("Expected long format output, got:\n%s", buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"X.csv":   "ID,1a,2b\nA,1,1\n",
		"Y.csv":   "ID,1a\nB,0\n",
		"Bad.csv": "ID,Trait\nA,1\n",
	})

	err := run(context.Background(), &bytes.Buffer{}, []string{paths["X.csv"], paths["Y.csv"]}, traittable.Options{}, false)
	if !errors.Is(err, traittable.ErrTraitCountMismatch) {
		t.Fatalf("Expected ErrTraitCountMismatch, got %v", err)
	}

	err = run(context.Background(), &bytes.Buffer{}, []string{paths["X.csv"], paths["Bad.csv"]}, traittable.Options{}, false)
	if !errors.Is(err, traittable.ErrMalformedHeader) {
		t.Fatalf("Expected ErrMalformedHeader, got %v", err)
	}

	err = run(context.Background(), &bytes.Buffer{}, []string{paths["X.csv"], paths["X.csv"] + ".missing"}, traittable.Options{}, false)
	if !errors.Is(err, traittable.ErrIO) {
		t.Fatalf("Expected ErrIO, got %v", err)
	}
}
