package savefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"lifelike/internal/core"
)

func TestEncodeLayout(t *testing.T) {
	g := core.NewGrid(2, 3, 1)
	g.Set(0, 1, core.Cell{State: 1, Age: 4})
	g.Set(1, 2, core.Cell{State: 1, Age: 255})

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatal(err)
	}
	want := "0;0,1;4,0;0\n0;0,0;0,1;255\n"
	if buf.String() != want {
		t.Fatalf("Encode = %q, expected %q", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	src := core.NewGrid(17, 11, 1)
	rng := core.NewRNG(7)
	src.Randomize(0.4, rng.Source())
	for i := range src.Current() {
		if src.Current()[i].Alive() {
			src.Current()[i].Age = uint8(rng.Source().IntN(256))
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	dst := core.NewGrid(17, 11, 1)
	rep, err := Decode(&buf, dst)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Lines != 17 || rep.Cells != 17*11 || rep.Skipped != 0 || rep.Truncated != 0 {
		t.Fatalf("unexpected report %+v", rep)
	}
	if !slices.Equal(src.Current(), dst.Current()) {
		t.Fatal("decode(encode(g)) differs from g")
	}
	if !slices.Equal(dst.Current(), dst.Next()) {
		t.Fatal("decode must fill both buffers")
	}
}

func TestDecodeTruncatesLargerFile(t *testing.T) {
	data := strings.Join([]string{
		"1;1,0;0,1;3,1;9",
		"0;0,1;2,0;0,1;1",
		"1;5,1;5,1;5,1;5",
		"1;0,1;0,1;0,1;0",
	}, "\n") + "\n"
	g := core.NewGrid(2, 2, 1)
	rep, err := Decode(strings.NewReader(data), g)
	if err != nil {
		t.Fatalf("oversized file should load: %v", err)
	}
	want := []core.Cell{
		{State: 1, Age: 1}, {State: 0, Age: 0},
		{State: 0, Age: 0}, {State: 1, Age: 2},
	}
	got := []core.Cell{
		g.Current()[g.Index(0, 0)], g.Current()[g.Index(1, 0)],
		g.Current()[g.Index(0, 1)], g.Current()[g.Index(1, 1)],
	}
	if !slices.Equal(got, want) {
		t.Fatalf("decoded %+v, expected %+v", got, want)
	}
	if rep.Truncated != 12 {
		t.Fatalf("truncated = %d, expected 12", rep.Truncated)
	}
}

func TestDecodeSmallerFileLeavesRestCleared(t *testing.T) {
	g := core.NewGrid(4, 4, 1)
	for i := range g.Current() {
		g.Current()[i] = core.Cell{State: 1, Age: 50}
		g.Next()[i] = core.Cell{State: 1, Age: 50}
	}
	if _, err := Decode(strings.NewReader("1;3,1;4\n"), g); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c, _ := g.Get(x, y)
			want := core.Cell{}
			if x == 0 && y == 0 {
				want = core.Cell{State: 1, Age: 3}
			}
			if x == 0 && y == 1 {
				want = core.Cell{State: 1, Age: 4}
			}
			if c != want {
				t.Fatalf("cell (%d,%d) = %+v, expected %+v", x, y, c, want)
			}
		}
	}
}

func TestDecodeSkipsMalformedCells(t *testing.T) {
	data := "1;2,x;1,1;999,1;7\n\n0;0,1;1,7;0\n"
	g := core.NewGrid(3, 4, 1)
	rep, err := Decode(strings.NewReader(data), g)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Skipped != 4 {
		t.Fatalf("skipped = %d, expected 4", rep.Skipped)
	}
	if c, _ := g.Get(0, 0); c != (core.Cell{State: 1, Age: 2}) {
		t.Fatalf("(0,0) = %+v", c)
	}
	for y := 1; y <= 2; y++ {
		if c, _ := g.Get(0, y); c != (core.Cell{}) {
			t.Fatalf("malformed (0,%d) should stay cleared, got %+v", y, c)
		}
	}
	if c, _ := g.Get(0, 3); c != (core.Cell{State: 1, Age: 7}) {
		t.Fatalf("field after bad ones must keep its column, got %+v", c)
	}
	if c, _ := g.Get(2, 1); c != (core.Cell{State: 1, Age: 1}) {
		t.Fatalf("line after blank line must land on column 2, got %+v", c)
	}
}

func TestDecodeVeryLongLine(t *testing.T) {
	const extra = 5_000_000
	data := "1;3," + strings.Repeat("0;0,", extra) + "0;0\n1;4,1;5\n"
	g := core.NewGrid(2, 2, 1)
	rep, err := Decode(strings.NewReader(data), g)
	if err != nil {
		t.Fatalf("long line should be cut, not fail the load: %v", err)
	}
	if c, _ := g.Get(0, 0); c != (core.Cell{State: 1, Age: 3}) {
		t.Fatalf("(0,0) = %+v", c)
	}
	if c, _ := g.Get(1, 0); c != (core.Cell{State: 1, Age: 4}) {
		t.Fatalf("line after the long one must still load, (1,0) = %+v", c)
	}
	if c, _ := g.Get(1, 1); c != (core.Cell{State: 1, Age: 5}) {
		t.Fatalf("(1,1) = %+v", c)
	}
	if rep.Lines != 2 || rep.Truncated != extra {
		t.Fatalf("report = %+v", rep)
	}
}

func TestDecodeOverlongFieldIsSkipped(t *testing.T) {
	g := core.NewGrid(1, 2, 1)
	rep, err := Decode(strings.NewReader("1;"+strings.Repeat("0", 100)+"1,1;2"), g)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Skipped != 1 {
		t.Fatalf("skipped = %d, expected 1", rep.Skipped)
	}
	if c, _ := g.Get(0, 1); c != (core.Cell{State: 1, Age: 2}) {
		t.Fatalf("(0,1) = %+v", c)
	}
}

func TestSaveLoadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultSaveFile)

	src := core.NewGrid(6, 5, 1)
	src.Set(3, 4, core.Cell{State: 1, Age: 12})
	if err := Save(path, src); err != nil {
		t.Fatal(err)
	}

	dst := core.NewGrid(6, 5, 1)
	dst.SetAlive(0, 0, true)
	if _, err := Load(path, dst); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(src.Current(), dst.Current()) {
		t.Fatal("loaded board differs from saved board")
	}
}

func TestLoadMissingFileClearsGrid(t *testing.T) {
	g := core.NewGrid(3, 3, 1)
	g.SetAlive(1, 1, true)
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), g)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
	if g.Population() != 0 {
		t.Fatal("failed load must leave the grid cleared")
	}
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	g := core.NewGrid(2, 2, 1)
	err := Save(filepath.Join(t.TempDir(), "missing", "x.txt"), g)
	if !errors.Is(err, ErrFileWrite) {
		t.Fatalf("expected ErrFileWrite, got %v", err)
	}
}
