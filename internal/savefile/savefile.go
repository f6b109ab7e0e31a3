// Package savefile reads and writes board snapshots as plain text.
//
// Each line holds one grid column (x), listing its cells from y=0 downwards as
// "<state>;<age>" joined by commas. Rules are not stored.
package savefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"lifelike/internal/core"
)

// DefaultSaveFile is where the save command writes.
const DefaultSaveFile = "current_save.txt"

// Presets lists the bundled starting boards, all in the save format.
var Presets = []string{
	"glider_guns.txt",
	"rake_crash.txt",
	"dozen_gliders.txt",
	"bunnies.txt",
	"thunderbird.txt",
	"four_castles.txt",
}

var (
	// ErrFileNotFound reports a load from a missing file.
	ErrFileNotFound = errors.New("save file not found")
	// ErrFileRead reports any other failure while loading.
	ErrFileRead = errors.New("save file read failed")
	// ErrFileWrite reports a failure while saving.
	ErrFileWrite = errors.New("save file write failed")
)

// Report summarises a decode.
type Report struct {
	// Lines is the number of lines read.
	Lines int
	// Cells is the number of cells written into the grid.
	Cells int
	// Skipped counts fields that were malformed and left cleared.
	Skipped int
	// Truncated counts well-formed fields that fell outside the grid.
	Truncated int
}

// Encode writes the current generation of g.
func Encode(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Current()
	buf := make([]byte, 0, g.H*6)
	for x := 0; x < g.W; x++ {
		buf = buf[:0]
		for y := 0; y < g.H; y++ {
			if y > 0 {
				buf = append(buf, ',')
			}
			c := cells[g.Index(x, y)]
			buf = strconv.AppendUint(buf, uint64(c.State), 10)
			buf = append(buf, ';')
			buf = strconv.AppendUint(buf, uint64(c.Age), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// maxField bounds how much of one field is kept; longer fields are malformed.
const maxField = 32

// Decode clears g and fills both of its buffers from r. Data beyond the grid
// is dropped and malformed fields are skipped; only read errors are returned.
// Lines are consumed field by field, so a line of any length costs no more
// memory than one field.
func Decode(r io.Reader, g *core.Grid) (Report, error) {
	g.Clear()
	d := decoder{g: g, field: make([]byte, 0, maxField)}
	br := bufio.NewReader(r)
	for {
		chunk, err := br.ReadSlice('\n')
		d.feed(chunk)
		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
		case errors.Is(err, io.EOF):
			if d.pending {
				d.endLine()
			}
			return d.rep, nil
		default:
			return d.rep, err
		}
	}
}

// decoder holds the position of a streaming Decode.
type decoder struct {
	g   *core.Grid
	rep Report

	x, y     int
	field    []byte
	overlong bool
	// pending is set once the current line has any bytes.
	pending bool
}

func (d *decoder) feed(chunk []byte) {
	for _, b := range chunk {
		switch b {
		case '\n':
			d.endLine()
		case ',':
			d.pending = true
			d.endField()
		default:
			d.pending = true
			if len(d.field) < maxField {
				d.field = append(d.field, b)
			} else {
				d.overlong = true
			}
		}
	}
}

func (d *decoder) endField() {
	defer func() {
		d.field = d.field[:0]
		d.overlong = false
		d.y++
	}()
	if d.x >= d.g.W {
		d.rep.Truncated++
		return
	}
	c, ok := core.Cell{}, false
	if !d.overlong {
		c, ok = parseCell(string(d.field))
	}
	if !ok {
		d.rep.Skipped++
		return
	}
	if d.y >= d.g.H {
		d.rep.Truncated++
		return
	}
	d.g.Set(d.x, d.y, c)
	d.rep.Cells++
}

func (d *decoder) endLine() {
	d.endField()
	d.rep.Lines++
	d.x++
	d.y = 0
	d.pending = false
}

func parseCell(field string) (core.Cell, bool) {
	stateText, ageText, ok := strings.Cut(strings.TrimSpace(field), ";")
	if !ok {
		return core.Cell{}, false
	}
	state, err := strconv.ParseUint(strings.TrimSpace(stateText), 10, 8)
	if err != nil || state > 1 {
		return core.Cell{}, false
	}
	age, err := strconv.ParseUint(strings.TrimSpace(ageText), 10, 8)
	if err != nil {
		return core.Cell{}, false
	}
	return core.Cell{State: uint8(state), Age: uint8(age)}, true
}

// Load clears g and decodes the file at path into it. The grid stays cleared
// when the file cannot be opened.
func Load(path string, g *core.Grid) (Report, error) {
	g.Clear()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, fmt.Errorf("load %s: %w: %w", path, ErrFileNotFound, err)
		}
		return Report{}, fmt.Errorf("load %s: %w: %w", path, ErrFileRead, err)
	}
	defer f.Close()
	rep, err := Decode(f, g)
	if err != nil {
		return rep, fmt.Errorf("load %s: %w: %w", path, ErrFileRead, err)
	}
	return rep, nil
}

// Save writes the current generation of g to path, replacing the file.
func Save(path string, g *core.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w: %w", path, ErrFileWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save %s: %w: %w", path, ErrFileWrite, cerr)
		}
	}()
	if err := Encode(f, g); err != nil {
		return fmt.Errorf("save %s: %w: %w", path, ErrFileWrite, err)
	}
	return nil
}
