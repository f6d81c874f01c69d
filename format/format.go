package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	JSONFormat Format = iota
	TOMLFormat
	YAMLFormat
)

var (
	ErrBadFormat     = errors.New("bad format")
	ErrUnknownFormat = errors.New("unknown format")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"t":    TOMLFormat,
		"toml": TOMLFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// FromExtension guesses the format of a file from its extension. Extensions
// are matched case sensitively.
func FromExtension(name string) (Format, error) {
	if name == "" || name == "-" {
		return 0, fmt.Errorf("%w: cannot determine format from stream", ErrUnknownFormat)
	}
	ext := filepath.Ext(name)
	switch ext {
	case ".json":
		return JSONFormat, nil
	case ".toml":
		return TOMLFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	case "":
		return 0, fmt.Errorf("%w: %q has no file extension", ErrUnknownFormat, name)
	default:
		return 0, fmt.Errorf("%w: file extension %q", ErrUnknownFormat, ext[1:])
	}
}

// Resolve returns *hint when it is set and otherwise guesses from name.
func Resolve(hint *Format, name string) (Format, error) {
	if hint != nil {
		return *hint, nil
	}
	return FromExtension(name)
}
