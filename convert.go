package simdstring

import (
	"bytes"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	return i
}

// intToken is an integer prefix found by scanInt.
type intToken struct {
	neg    bool
	digits []byte
	base   int
	end    int
}

// scanInt finds the longest integer prefix of b the way strtol does:
// leading white space, an optional sign, an optional 0x prefix when base is
// 0 or 16, and a leading 0 selecting octal when base is 0.
func scanInt(b []byte, base int) (intToken, error) {
	if base != 0 && (base < 2 || base > 36) {
		return intToken{}, errors.Wrapf(ErrInvalidArgument, "base %d", base)
	}
	i := skipSpace(b, 0)
	var tok intToken
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		tok.neg = b[i] == '-'
		i++
	}
	if (base == 0 || base == 16) && i+2 < len(b) && b[i] == '0' && b[i+1]|0x20 == 'x' && digitVal(b[i+2]) < 16 {
		i += 2
		base = 16
	} else if base == 0 {
		base = 10
		if i < len(b) && b[i] == '0' {
			base = 8
		}
	}
	j := i
	for j < len(b) && digitVal(b[j]) < base {
		j++
	}
	if j == i {
		return intToken{}, errors.Wrapf(ErrInvalidArgument, "no digits in %q", b)
	}
	tok.digits, tok.base, tok.end = b[i:j], base, j
	return tok, nil
}

func rangeErr(err error, b []byte) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
		return errors.Wrapf(ErrOutOfRange, "%q", b)
	}
	return errors.Wrapf(ErrInvalidArgument, "%q: %v", b, err)
}

// ParseInt parses the longest integer prefix of s in the given base (0 picks
// the base from the prefix). It returns the value and the number of bytes
// consumed. A value that does not fit is clamped and reported with
// ErrOutOfRange.
func (s *String) ParseInt(base int) (int64, int, error) {
	b := s.bytes()
	tok, err := scanInt(b, base)
	if err != nil {
		return 0, 0, err
	}
	text := string(tok.digits)
	if tok.neg {
		text = "-" + text
	}
	v, err := strconv.ParseInt(text, tok.base, 64)
	if err != nil {
		return v, tok.end, rangeErr(err, b[:tok.end])
	}
	return v, tok.end, nil
}

// ParseUint is ParseInt for unsigned values. A minus sign is accepted only
// in front of zero.
func (s *String) ParseUint(base int) (uint64, int, error) {
	b := s.bytes()
	tok, err := scanInt(b, base)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseUint(string(tok.digits), tok.base, 64)
	if err != nil {
		return v, tok.end, rangeErr(err, b[:tok.end])
	}
	if tok.neg && v != 0 {
		return 0, tok.end, errors.Wrapf(ErrOutOfRange, "negative value %q", b[:tok.end])
	}
	return v, tok.end, nil
}

// Atoi parses s as a base-10 int, ignoring anything after the number.
func (s *String) Atoi() (int, error) {
	v, _, err := s.ParseInt(10)
	if err != nil {
		return int(v), err
	}
	if int64(int(v)) != v {
		return 0, errors.Wrapf(ErrOutOfRange, "%d does not fit in int", v)
	}
	return int(v), nil
}

// scanFloat returns the end of the longest floating point prefix, including
// hexadecimal mantissas and the inf, infinity and nan spellings. hex reports a
// hexadecimal mantissa.
func scanFloat(b []byte) (end int, hex bool) {
	i := skipSpace(b, 0)
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	for _, word := range []string{"infinity", "inf", "nan"} {
		if hasFoldPrefix(b[i:], word) {
			return i + len(word), false
		}
	}
	if i+1 < len(b) && b[i] == '0' && b[i+1]|0x20 == 'x' {
		if j := scanMantissa(b, i+2, 16, 'p'); j > 0 {
			return j, true
		}
	}
	return scanMantissa(b, i, 10, 'e'), false
}

// scanMantissa scans digits in base with an optional fraction, then an
// optional decimal exponent introduced by exp. It returns 0 when there are no
// mantissa digits.
func scanMantissa(b []byte, i, base int, exp byte) int {
	mant := 0
	for i < len(b) && digitVal(b[i]) < base {
		i++
		mant++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && digitVal(b[i]) < base {
			i++
			mant++
		}
	}
	if mant == 0 {
		return 0
	}
	if i < len(b) && b[i]|0x20 == exp {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		k := j
		for k < len(b) && digitVal(b[k]) < 10 {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func hasFoldPrefix(b []byte, word string) bool {
	if len(b) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if b[i]|0x20 != word[i] {
			return false
		}
	}
	return true
}

// ParseFloat parses the longest floating point prefix of s and returns the
// value and the number of bytes consumed. Overflow returns ±Inf with
// ErrOutOfRange.
func (s *String) ParseFloat() (float64, int, error) {
	b := s.bytes()
	end, hex := scanFloat(b)
	if end == 0 {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "no number in %q", b)
	}
	text := b[skipSpace(b, 0):end]
	if unsigned := bytes.TrimLeft(text, "+-"); len(unsigned) == 3 && hasFoldPrefix(unsigned, "nan") {
		if text[0] == '-' {
			return math.Copysign(math.NaN(), -1), end, nil
		}
		return math.NaN(), end, nil
	}
	num := string(text)
	if hex && bytes.IndexAny(text, "pP") < 0 {
		// strconv wants a binary exponent on every hex float.
		num += "p0"
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return v, end, rangeErr(err, text)
	}
	return v, end, nil
}

// Atof parses s as a float64, ignoring anything after the number.
func (s *String) Atof() (float64, error) {
	v, _, err := s.ParseFloat()
	return v, err
}

// AppendInt adds the text form of v in the given base.
func (s *String) AppendInt(v int64, base int) *String {
	var buf [65]byte
	return s.AppendBytes(strconv.AppendInt(buf[:0], v, base))
}

// AppendUint adds the text form of v in the given base.
func (s *String) AppendUint(v uint64, base int) *String {
	var buf [64]byte
	return s.AppendBytes(strconv.AppendUint(buf[:0], v, base))
}

// AppendFloat adds the text form of f as strconv.FormatFloat would format
// it.
func (s *String) AppendFloat(f float64, format byte, prec int) *String {
	var buf [32]byte
	return s.AppendBytes(strconv.AppendFloat(buf[:0], f, format, prec, 64))
}

// FormatInt returns the decimal form of v.
func FormatInt(v int64) *String {
	return New().AppendInt(v, 10)
}

// FormatUint returns the decimal form of v.
func FormatUint(v uint64) *String {
	return New().AppendUint(v, 10)
}

// FormatFloat returns f with six digits after the decimal point.
func FormatFloat(f float64) *String {
	return New().AppendFloat(f, 'f', 6)
}
