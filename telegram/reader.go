package telegram

import (
	"bufio"
	"io"
)

const maxFrameSize = 16 * 1024

// Reader extracts complete P1 frames from a byte stream, e.g. a serial
// port. Bytes outside a frame are discarded, so the reader can be attached
// to a running meter mid-transmission and synchronizes on the next '/'.
type Reader struct {
	in *bufio.Reader
}

// NewReader returns a Reader on top of the given stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r)}
}

// Next blocks until a complete frame, from '/' up to and including the
// checksum line, has been read and returns it. It returns io.EOF when the
// stream ends outside a frame and io.ErrUnexpectedEOF when it ends within.
func (r *Reader) Next() (string, error) {
	err := r.synchronize()
	if err != nil {
		return "", err
	}

	frame := make([]byte, 0, 1024)
	frame = append(frame, '/')
	for {
		b, err := r.in.ReadByte()
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}

		switch b {
		case '/':
			// a new frame begins before the current one was complete
			frame = frame[:1]
		case '!':
			frame = append(frame, b)
			checksumLine, err := r.in.ReadString('\n')
			if err != nil && err != io.EOF {
				return "", err
			}
			return string(append(frame, checksumLine...)), nil
		default:
			frame = append(frame, b)
		}

		if len(frame) > maxFrameSize {
			return "", io.ErrShortBuffer
		}
	}
}

func (r *Reader) synchronize() error {
	for {
		b, err := r.in.ReadByte()
		if err != nil {
			return err
		}
		if b == '/' {
			return nil
		}
	}
}
