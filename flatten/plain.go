package flatten

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Plain emits every line of r as a path-less leaf, in order. Line
// terminators ("\n" or "\r\n") are dropped; a final line without one is
// still emitted.
func Plain(r io.Reader, out Output) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if oErr := out.Plain(line); oErr != nil {
				return oErr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
