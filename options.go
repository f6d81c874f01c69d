package flatcat

import "github.com/flatcat-go/flatcat/encode"

type Options struct {
	encode.Options

	// Plain prints inputs of unknown format line by line instead of
	// failing.
	Plain bool
	// ResetNumbers restarts value numbering at 1 for every input.
	ResetNumbers bool
}

func DefaultOptions() Options {
	return Options{
		Options: encode.DefaultOptions(),
		Plain:   true,
	}
}
