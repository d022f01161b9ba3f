package simdstring

import (
	"io"

	"github.com/pkg/errors"
)

const readChunk = 512

// ReadWord replaces the content with the next white-space delimited word
// from r. Leading ASCII white space is skipped and the delimiter after the
// word is left unread. It returns io.EOF if r ends before a word starts.
func (s *String) ReadWord(r io.ByteScanner) error {
	s.Clear()
	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			s.AppendByte(c)
			break
		}
	}
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if isSpace(c) {
			return r.UnreadByte()
		}
		s.AppendByte(c)
	}
}

// ReadLine replaces the content with the bytes of r up to delim. The
// delimiter is consumed but not stored. It returns io.EOF only if r was
// already exhausted.
func (s *String) ReadLine(r io.ByteReader, delim byte) error {
	s.Clear()
	read := false
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			if read {
				return nil
			}
			return io.EOF
		}
		if err != nil {
			return err
		}
		read = true
		if c == delim {
			return nil
		}
		s.AppendByte(c)
	}
}

// ReadFrom appends everything r yields until io.EOF.
func (s *String) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		blk := s.reserveFor(s.length + readChunk)
		n, err := r.Read(blk[s.length : len(blk)-1])
		if n < 0 {
			return total, errors.New("simdstring: reader returned negative count")
		}
		s.commit(s.length + n)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the content to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.bytes())
	return int64(n), err
}

// Write appends p. It never fails.
func (s *String) Write(p []byte) (int, error) {
	s.appendBytes(p)
	return len(p), nil
}

// WriteString appends str. It never fails.
func (s *String) WriteString(str string) (int, error) {
	s.appendBytes(stringBytes(str))
	return len(str), nil
}

// WriteByte appends c. It never fails.
func (s *String) WriteByte(c byte) error {
	s.AppendByte(c)
	return nil
}
