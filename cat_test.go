package flatcat

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/flatcat-go/flatcat/encode"
	"github.com/flatcat-go/flatcat/format"
	"github.com/flatcat-go/flatcat/parse"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Color = false
	return opts
}

func catString(t *testing.T, opts Options, ins ...Input) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	c := New(encode.NewRenderer(buf, encode.WithOptions(opts.Options)), opts)
	for _, in := range ins {
		if err := c.Cat(in); err != nil {
			return buf.String(), err
		}
	}
	return buf.String(), nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCat(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		in    string
		setup func(*Options)
		want  string
	}{
		{
			name: "json",
			file: "a.json",
			in:   `{"a":1,"b":[true,null,"x"],"c":{}}`,
			want: ".a: 1\n.b[0]: true\n.b[1]: null\n.b[2]: \"x\"\n",
		},
		{
			name: "json without nulls and quotes",
			file: "a.json",
			in:   `{"a":null,"b":"x"}`,
			setup: func(o *Options) {
				o.Null = false
				o.Quotes = false
			},
			want: ".b: x\n",
		},
		{
			name: "toml",
			file: "c.toml",
			in:   "name = \"n\"\nwhen = 1979-05-27\n[server]\nport = 80\nratio = 1.0\n",
			want: ".name: \"n\"\n.when: 1979-05-27\n.server.port: 80\n.server.ratio: 1.0\n",
		},
		{
			name: "toml exponent float",
			file: "f.toml",
			in:   "f = 1e10\n",
			want: ".f: 10000000000.0\n",
		},
		{
			name: "yaml",
			file: "c.yaml",
			in:   "b: 1\na:\n  - x\n  - .inf\n  - ~\n",
			want: ".b: 1\n.a[0]: \"x\"\n.a[1]: .inf\n.a[2]: null\n",
		},
		{
			name: "yml extension",
			file: "c.yml",
			in:   "k: v\n",
			want: ".k: \"v\"\n",
		},
		{
			name: "yaml documents share numbering",
			file: "c.yaml",
			in:   "a: 1\n---\nb: 2\n",
			setup: func(o *Options) {
				o.Numbers = true
			},
			want: "    1  .a: 1\n    2  .b: 2\n",
		},
		{
			name: "plain fallback",
			file: "notes.txt",
			in:   "first\r\nsecond",
			setup: func(o *Options) {
				o.Numbers = true
				o.EndOfLine = true
			},
			want: "    1  first$\n    2  second$\n",
		},
		{
			name: "root scalar",
			file: "s.json",
			in:   `"x"`,
			want: ": \"x\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			if tt.setup != nil {
				tt.setup(&opts)
			}
			got, err := catString(t, opts, FromPath(writeFile(t, tt.file, tt.in)))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatUnknownFormat(t *testing.T) {
	opts := testOptions()
	opts.Plain = false
	got, err := catString(t, opts, FromPath(writeFile(t, "notes.txt", "x\n")))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("error = %v", err)
	}
	if got != "" {
		t.Errorf("unexpected output %q", got)
	}

	_, err = catString(t, opts, FromReader("-", strings.NewReader("x\n")))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("stream error = %v", err)
	}
}

func TestCatHint(t *testing.T) {
	in := FromReader("-", strings.NewReader("a: [1]\n")).WithHint(format.YAMLFormat)
	got, err := catString(t, testOptions(), in)
	if err != nil {
		t.Fatal(err)
	}
	if got != ".a[0]: 1\n" {
		t.Errorf("got %q", got)
	}

	// a hint wins over the extension
	in = FromPath(writeFile(t, "x.json", "k = 1\n")).WithHint(format.TOMLFormat)
	got, err = catString(t, testOptions(), in)
	if err != nil {
		t.Fatal(err)
	}
	if got != ".k: 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestCatNumbering(t *testing.T) {
	a := FromReader("a.json", strings.NewReader(`[1,2]`))
	b := FromReader("b.json", strings.NewReader(`{"x":3}`))
	opts := testOptions()
	opts.Numbers = true
	got, err := catString(t, opts, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := "    1  [0]: 1\n    2  [1]: 2\n    3  .x: 3\n"
	if got != want {
		t.Errorf("continued numbering: got %q, want %q", got, want)
	}

	a = FromReader("a.json", strings.NewReader(`[1,2]`))
	b = FromReader("b.json", strings.NewReader(`{"x":3}`))
	opts.ResetNumbers = true
	got, err = catString(t, opts, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want = "    1  [0]: 1\n    2  [1]: 2\n    1  .x: 3\n"
	if got != want {
		t.Errorf("reset numbering: got %q, want %q", got, want)
	}
}

func TestCatErrors(t *testing.T) {
	errRead := errors.New("read failed")

	_, err := catString(t, testOptions(), FromPath(filepath.Join(t.TempDir(), "missing.json")))
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "open" || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}

	_, err = catString(t, testOptions(), FromReader("r.json", iotest.ErrReader(errRead)))
	if !errors.As(err, &ioErr) || ioErr.Op != "read" || !errors.Is(err, errRead) {
		t.Errorf("json read error = %v", err)
	}

	_, err = catString(t, testOptions(), FromReader("r.txt", iotest.ErrReader(errRead)))
	if !errors.As(err, &ioErr) || ioErr.Op != "read" || !errors.Is(err, errRead) {
		t.Errorf("plain read error = %v", err)
	}

	got, err := catString(t, testOptions(), FromReader("bad.json", strings.NewReader(`{"a":`)))
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("parse error = %v", err)
	}
	if !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("parse error %q does not name the input", err)
	}
	if got != "" {
		t.Errorf("output on parse error: %q", got)
	}

	for _, in := range []string{`{1:2}`, `{"a" 1}`, `[1 2]`, `[1,]`} {
		got, err := catString(t, testOptions(), FromReader("bad.json", strings.NewReader(in)))
		if !errors.Is(err, parse.ErrParse) || got != "" {
			t.Errorf("%s: got %q, error %v", in, got, err)
		}
	}
}

type failWriter struct{}

var errSink = errors.New("sink failed")

func (failWriter) Write(p []byte) (int, error) { return 0, errSink }

func TestCatWriteError(t *testing.T) {
	opts := testOptions()
	for _, in := range []Input{
		FromReader("a.json", strings.NewReader(`[1]`)),
		FromReader("a.txt", strings.NewReader("line\n")),
	} {
		c := New(encode.NewRenderer(failWriter{}, encode.WithOptions(opts.Options)), opts)
		err := c.Cat(in)
		var ioErr *IOError
		if !errors.As(err, &ioErr) || ioErr.Op != "write" || !errors.Is(err, errSink) {
			t.Errorf("%s: write error = %v", in.Name, err)
		}
	}
}
