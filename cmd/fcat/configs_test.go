package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/flatcat-go/flatcat"
	"github.com/flatcat-go/flatcat/encode"
	"github.com/flatcat-go/flatcat/format"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  MainConfig
		want flatcat.Options
	}{
		{
			name: "defaults",
			want: flatcat.Options{
				Options: encode.Options{Null: true, Quotes: true},
				Plain:   true,
			},
		},
		{
			name: "everything flipped",
			cfg: MainConfig{
				Color:        true,
				NoNull:       true,
				NoPlain:      true,
				NoQuotes:     true,
				Numbers:      true,
				ResetNumbers: true,
				ShowEnds:     true,
			},
			want: flatcat.Options{
				Options:      encode.Options{Color: true, Numbers: true, EndOfLine: true},
				ResetNumbers: true,
			},
		},
		{
			name: "no color wins",
			cfg:  MainConfig{NoColor: true},
			want: flatcat.Options{
				Options: encode.Options{Null: true, Quotes: true},
				Plain:   true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.options(&bytes.Buffer{})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFmtFunc(t *testing.T) {
	cfg := &MainConfig{}
	fn := cfg.fmtFunc(&cfg.Format)
	if _, err := fn(nil, "yml"); err != nil {
		t.Fatal(err)
	}
	if cfg.Format == nil || *cfg.Format != format.YAMLFormat {
		t.Errorf("format = %v", cfg.Format)
	}
	_, err := fn(nil, "xml")
	if !errors.Is(err, cli.ErrUsage) || !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad format error = %v", err)
	}
}

func TestIsWriteErr(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&flatcat.IOError{Op: "write", Err: errors.New("x")}, true},
		{fmt.Errorf("wrapped: %w", &flatcat.IOError{Op: "write", Err: errors.New("x")}), true},
		{&flatcat.IOError{Op: "open", Path: "a.json", Err: errors.New("x")}, false},
		{flatcat.ErrUnknownFormat, false},
	}
	for _, tt := range tests {
		if got := isWriteErr(tt.err); got != tt.want {
			t.Errorf("isWriteErr(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
