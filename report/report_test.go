package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/carbocation/biodistance/chisq"
	"github.com/carbocation/biodistance/gower"
	"github.com/carbocation/biodistance/mmd"
	"github.com/carbocation/biodistance/traittable"
)

func parse(t *testing.T, name, input string) *traittable.Table {
	t.Helper()

	tbl, err := traittable.Parse(name, strings.NewReader(input), traittable.Options{})
	if err != nil {
		t.Fatal(err)
	}

	return tbl
}

func TestFormatFloat(t *testing.T) {
	for in, want := range map[float64]string{
		4.8:         "4.8",
		1:           "1.0",
		0:           "0.0",
		-0.25:       "-0.25",
		0.00001:     "1e-05",
		math.NaN():  Placeholder,
		math.Inf(1): Placeholder,
	} {
		if got := FormatFloat(in); got != want {
			t.Fatalf("FormatFloat(%v) = %q, expected %q", in, got, want)
		}
	}
}

func TestWriteChiSquare(t *testing.T) {
	x := parse(t, "X.csv", "ID,1a,2b\nA,1,1\nB,1,0\nC,1,1\nD,0,2\n")
	y := parse(t, "Y.csv", "ID,1a,2b\nE,0,2\nF,0,2\nG,0,2\nH,0,9\n")

	cmp, err := chisq.Compare([]*traittable.Table{x, y})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteChiSquare(&buf, []string{"X", "Y"}, x.TraitNames, cmp); err != nil {
		t.Fatal(err)
	}

	want := ",1a,,2b,\n" +
		"X/Y,4.8,0.7745966692414834,,\n" +
		"Significant,1,,0,\n"
	if got := buf.String(); got != want {
		t.Fatalf("Got:\n%s\nExpected:\n%s", got, want)
	}
}

func TestWriteChiSquareLong(t *testing.T) {
	x := parse(t, "X.csv", "ID,1a,2b\nA,1,1\nB,1,0\nC,1,1\nD,0,2\n")
	y := parse(t, "Y.csv", "ID,1a,2b\nE,0,2\nF,0,2\nG,0,2\nH,0,9\n")

	cmp, err := chisq.Compare([]*traittable.Table{x, y})
	if err != nil {
		t.Fatal(err)
	}

	records := ChiSquareRecords([]string{"X", "Y"}, x.TraitNames, cmp)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if r := records[0]; r.Pair != "X/Y" || r.A != 3 || r.B != 1 || r.C != 0 || r.D != 4 || r.ChiSquare != "4.8" || !r.Significant {
		t.Fatalf("Unexpected record %+v", r)
	}
	if r := records[1]; r.ChiSquare != "" || r.Phi != "" || r.P != "" || r.Significant {
		t.Fatalf("Undefined test should have empty statistics: %+v", r)
	}

	var buf bytes.Buffer
	if err := WriteChiSquareLong(&buf, []string{"X", "Y"}, x.TraitNames, cmp); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || lines[0] != "pair,trait,a,b,c,d,chi_square,phi,p,significant" {
		t.Fatalf("Unexpected long output:\n%s", buf.String())
	}
}

func TestWriteGower(t *testing.T) {
	tbl := parse(t, "Site.csv", "ID,1a,2b,3c\nA,1,0,2\nB,1,1,2\nC,2,2,2\n")
	m := gower.Matrix(tbl)

	var buf bytes.Buffer
	if err := WriteGower(&buf, tbl, m, nil); err != nil {
		t.Fatal(err)
	}

	want := ",A,B,C\n" +
		"A,1.0,0.5,-\n" +
		"B,0.5,1.0,-\n" +
		"C,-,-,-\n"
	if got := buf.String(); got != want {
		t.Fatalf("Got:\n%s\nExpected:\n%s", got, want)
	}

	buf.Reset()
	if err := WriteGower(&buf, tbl, m, gower.RowMeans(m)); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(buf.String(), "\n"); lines[0] != ",A,B,C,Mean" || lines[1] != "A,1.0,0.5,-,0.75" {
		t.Fatalf("Unexpected output with means:\n%s", buf.String())
	}
}

func TestWriteMMD(t *testing.T) {
	a := parse(t, "A.csv", "ID,1a,2b\nx,1,0\ny,1,1\nz,0,0\n")
	b := parse(t, "B.csv", "ID,1a,2b\nx,0,0\ny,0,1\n")
	tables := []*traittable.Table{a, b}

	ms, err := mmd.Compute(tables)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteMMD(&buf, []string{"A", "B"}, tables, ms); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(buf.String(), "\n")
	for _, v := range []struct {
		line int
		want string
	}{
		{0, "Thetas,1a,2b"},
		{3, ""},
		{4, "MMDs,A,B"},
		{5, "A,0.0," + FormatFloat(ms.MMD.At(0, 1))},
		{8, "sd MMDs,A,B"},
		{12, "MMD/Standardized MMD,A,B"},
		{13, "A,-," + FormatFloat(ms.MMD.At(0, 1))},
		{14, "B," + FormatFloat(ms.Standardized(1, 0)) + ",-"},
		{16, "Trait frequencies"},
		{17, "Trait,A,B"},
		{18, "1a,2/3=66.7,0/2=0.0"},
		{19, "2b,1/3=33.3,1/2=50.0"},
	} {
		if v.line >= len(lines) || lines[v.line] != v.want {
			t.Fatalf("Line %d: expected %q in:\n%s", v.line, v.want, buf.String())
		}
	}
}
