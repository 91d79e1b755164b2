package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Terminal key codes that are not printable characters
const (
	CodeInterrupt = "ctrl+c"
	CodeEscape    = "Escape"
	CodeEnter     = "Enter"
)

// KeyReader decodes terminal bytes into key codes using the same names the
// graphical backend reports ("ArrowUp", "Enter", "w", ...).
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r for key decoding
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one complete key has been read.
// Unknown escape sequences are discarded.
func (k *KeyReader) ReadKey() (string, error) {
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 0x1b:
			code, err := k.readEscape()
			if err != nil {
				return "", err
			}
			if code == "" {
				continue
			}
			return code, nil
		case b == 3:
			return CodeInterrupt, nil
		case b == '\r' || b == '\n':
			return CodeEnter, nil
		case b >= 32 && b < 127:
			return string(rune(b)), nil
		}
		// Other control bytes are ignored
	}
}

// readEscape handles the bytes after ESC. A lone ESC (nothing buffered
// behind it) is the Escape key.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return CodeEscape, nil
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	var final byte
	switch b2 {
	case 'O':
		// SS3: exactly one byte follows
		if final, err = k.r.ReadByte(); err != nil {
			return "", err
		}
	case '[':
		// CSI: parameter and intermediate bytes up to a final byte in 0x40-0x7E
		for {
			b, err := k.r.ReadByte()
			if err != nil {
				return "", err
			}
			if b >= 0x40 && b <= 0x7e {
				final = b
				break
			}
		}
	default:
		return "", nil
	}

	// Modifiers (ESC [ 1 ; 5 A) still report the plain arrow
	switch final {
	case 'A':
		return "ArrowUp", nil
	case 'B':
		return "ArrowDown", nil
	case 'C':
		return "ArrowRight", nil
	case 'D':
		return "ArrowLeft", nil
	}
	return "", nil
}

// ReadKeys reads keys until ctx is cancelled or the reader fails, sending
// each one to out. It closes out when it returns.
func (k *KeyReader) ReadKeys(ctx context.Context, out chan<- RawInput) error {
	defer close(out)
	for {
		code, err := k.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		select {
		case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RawMode puts stdin into raw mode and returns a function restoring it.
func RawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		term.Restore(fd, oldState)
	}, nil
}
