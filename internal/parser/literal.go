package parser

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// cookNumber computes the numeric value of a number token. Values beyond
// float64 range come out as infinities, matching runtime semantics; the
// serializer later refuses them.
func cookNumber(text string) float64 {
	s := strings.ReplaceAll(text, "_", "")
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return radixToFloat(s[2:], 16)
		case 'o', 'O':
			return radixToFloat(s[2:], 8)
		case 'b', 'B':
			return radixToFloat(s[2:], 2)
		}
		if isOctalDigits(s[1:]) {
			// Legacy octal; 8s and 9s fall through to decimal.
			return radixToFloat(s[1:], 8)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f // ±Inf from overflow
		}
		return 0
	}
	return f
}

// radixToFloat converts digits in the given base without an upper bound on
// the digit count; values past 2^53 round the way number semantics demand.
func radixToFloat(digits string, base int) float64 {
	n := new(big.Int)
	if _, ok := n.SetString(digits, base); !ok {
		return 0
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func isOctalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// bigintDigits normalizes a bigint token to plain decimal digits.
func bigintDigits(text string) string {
	s := strings.ReplaceAll(strings.TrimSuffix(text, "n"), "_", "")
	n := new(big.Int)
	if _, ok := n.SetString(s, 0); !ok {
		return s
	}
	return n.String()
}

// cookString computes the value of a string token including its quotes.
func cookString(text string) (string, bool) {
	if len(text) < 2 || text[len(text)-1] != text[0] {
		// Unterminated token; the lexer already reported it.
		if len(text) < 1 {
			return "", false
		}
		s, _ := cookEscapes(text[1:])
		return s, false
	}
	return cookEscapes(text[1 : len(text)-1])
}

// cookTemplate computes the cooked value of one template chunk. Line
// endings normalize to \n first. A false result means the cooked value is
// undefined, which tagged templates allow.
func cookTemplate(raw string) (string, bool) {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return cookEscapes(s)
}

// cookEscapes decodes escape sequences in a string or template body.
func cookEscapes(s string) (string, bool) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(s) {
			return b.String(), false
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case '0', '1', '2', '3', '4', '5', '6', '7':
			val := 0
			n := 0
			for n < 3 && i < len(s) && s[i] >= '0' && s[i] <= '7' {
				next := val*8 + int(s[i]-'0')
				if next > 0xFF {
					break
				}
				val = next
				i++
				n++
			}
			b.WriteRune(rune(val))
		case 'x':
			i++
			if i+2 > len(s) {
				return b.String(), false
			}
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return b.String(), false
			}
			b.WriteRune(rune(hi*16 + lo))
			i += 2
		case 'u':
			i++
			r, n, ok := decodeUnicodeEscape(s[i:])
			if !ok {
				return b.String(), false
			}
			i += n
			// Surrogate pairs written as two escapes combine.
			if utf16.IsSurrogate(r) && i+1 < len(s) && s[i] == '\\' && s[i+1] == 'u' {
				if r2, n2, ok2 := decodeUnicodeEscape(s[i+2:]); ok2 {
					if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
						b.WriteRune(combined)
						i += 2 + n2
						continue
					}
				}
			}
			b.WriteRune(r)
		case '\r':
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case '\n':
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			i += size
			if r == 0x2028 || r == 0x2029 {
				continue // line continuation
			}
			b.WriteRune(r)
		}
	}
	return b.String(), true
}

func decodeUnicodeEscape(s string) (rune, int, bool) {
	if len(s) > 0 && s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		v := 0
		for k := 1; k < end; k++ {
			d, ok := hexDigit(s[k])
			if !ok {
				return 0, 0, false
			}
			v = v*16 + d
			if v > 0x10FFFF {
				return 0, 0, false
			}
		}
		return rune(v), end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	v := 0
	for k := 0; k < 4; k++ {
		d, ok := hexDigit(s[k])
		if !ok {
			return 0, 0, false
		}
		v = v*16 + d
	}
	return rune(v), 4, true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
