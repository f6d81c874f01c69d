package flatcat

import (
	"bytes"
	"io"
	"strings"

	"github.com/flatcat-go/flatcat/encode"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff flattens a and b and writes the lines that differ to w, "- " for
// lines only in a and "+ " for lines only in b. Lines are compared without
// color or numbering; opts.Color only styles the markers. Diff reports
// whether any line differs.
func Diff(a, b Input, opts Options, w io.Writer) (bool, error) {
	aLines, err := flatLines(a, opts)
	if err != nil {
		return false, err
	}
	bLines, err := flatLines(b, opts)
	if err != nil {
		return false, err
	}

	// each distinct line becomes one rune so the diff runs line by line.
	m := map[string]rune{}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(lineRunes(m, aLines), lineRunes(m, bLines), false)

	del, ins := markers(opts.Color)
	ai, bi := 0, 0
	differs := false
	buf := &bytes.Buffer{}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			ai += n
			bi += n
			continue
		case diffpatch.DiffDelete:
			for _, line := range aLines[ai : ai+n] {
				buf.WriteString(del + line + "\n")
			}
			ai += n
		case diffpatch.DiffInsert:
			for _, line := range bLines[bi : bi+n] {
				buf.WriteString(ins + line + "\n")
			}
			bi += n
		}
		differs = true
		if _, err := w.Write(buf.Bytes()); err != nil {
			return differs, &IOError{Op: "write", Err: err}
		}
		buf.Reset()
	}
	return differs, nil
}

func flatLines(in Input, opts Options) ([]string, error) {
	buf := &bytes.Buffer{}
	eOpts := opts.Options
	eOpts.Color = false
	eOpts.Numbers = false
	eOpts.EndOfLine = false
	r := encode.NewRenderer(buf, encode.WithOptions(eOpts))
	if err := New(r, opts).Cat(in); err != nil {
		return nil, err
	}
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

func lineRunes(m map[string]rune, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, line := range lines {
		r, ok := m[line]
		if !ok {
			// skip the surrogate range, which does not survive string
			// conversion.
			r = rune(len(m) + 1)
			if r >= 0xD800 {
				r += 0x800
			}
			m[line] = r
		}
		rs[i] = r
	}
	return rs
}

func markers(enabled bool) (del, ins string) {
	if !enabled {
		return "- ", "+ "
	}
	red := color.New(color.FgRed)
	red.EnableColor()
	green := color.New(color.FgGreen)
	green.EnableColor()
	return red.Sprint("-") + " ", green.Sprint("+") + " "
}
