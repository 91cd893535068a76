package telegram

import (
	"fmt"
	"strings"
)

// ParseError describes why a value span could not be decoded. Offset is the
// position of the offending byte relative to the start of the span.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Reason)
}

func newParseError(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// shiftOffset moves a ParseError's offset by the given amount, so that errors
// from a partial span still point into the original span.
func shiftOffset(err error, by int) error {
	parseErr, ok := err.(*ParseError)
	if !ok {
		return err
	}
	return &ParseError{Offset: parseErr.Offset + by, Reason: parseErr.Reason}
}

// parseNumber consumes one parenthesized value group containing a sign-free
// decimal literal with at most maxFrac fraction digits, followed by the given
// unit marker (e.g. "(00.317*kW)"). An empty unit means the literal stands
// alone. The literal is returned scaled by 10^maxFrac, together with the
// unconsumed rest of the span. On failure nothing is consumed.
func parseNumber(maxFrac int, unit string, span string) (uint32, string, error) {
	content, rest, err := valueGroup(span)
	if err != nil {
		return 0, "", err
	}

	numEnd := len(content)
	if unit != "" {
		star := strings.LastIndexByte(content, '*')
		if star == -1 {
			return 0, "", newParseError(1+len(content), "unit %s expected", unit)
		}
		if content[star+1:] != unit {
			return 0, "", newParseError(1+star+1, "unit %s expected, got %s", unit, content[star+1:])
		}
		numEnd = star
	}
	if numEnd == 0 {
		return 0, "", newParseError(1, "number expected")
	}

	var value uint32
	fracDigits := -1
	for i := 0; i < numEnd; i++ {
		c := content[i]
		switch {
		case c == '.':
			if fracDigits >= 0 {
				return 0, "", newParseError(1+i, "duplicate decimal point")
			}
			if maxFrac == 0 {
				return 0, "", newParseError(1+i, "integer expected")
			}
			fracDigits = 0
		case c >= '0' && c <= '9':
			if fracDigits >= 0 {
				fracDigits++
				if fracDigits > maxFrac {
					return 0, "", newParseError(1+i, "too many fraction digits, at most %d allowed", maxFrac)
				}
			}
			value = value*10 + uint32(c-'0')
		default:
			return 0, "", newParseError(1+i, "invalid character %q in number", c)
		}
	}

	if fracDigits < 0 {
		fracDigits = 0
	}
	for i := fracDigits; i < maxFrac; i++ {
		value *= 10
	}

	return value, rest, nil
}

// parseString consumes one parenthesized value group and returns its content,
// which must be between minLen and maxLen characters long (inclusive).
func parseString(minLen, maxLen int, span string) (string, string, error) {
	content, rest, err := valueGroup(span)
	if err != nil {
		return "", "", err
	}
	if len(content) < minLen {
		return "", "", newParseError(1+len(content), "string too short, %d below minimum %d", len(content), minLen)
	}
	if len(content) > maxLen {
		return "", "", newParseError(1+maxLen, "string too long, %d exceeds maximum %d", len(content), maxLen)
	}
	return content, rest, nil
}

// valueGroup strips one "(...)" group off the span.
func valueGroup(span string) (string, string, error) {
	if len(span) == 0 || span[0] != '(' {
		return "", "", newParseError(0, "opening parenthesis expected")
	}
	end := -1
	for i := 1; i < len(span); i++ {
		if span[i] == ')' {
			end = i
			break
		}
	}
	if end == -1 {
		return "", "", newParseError(len(span), "closing parenthesis expected")
	}
	return span[1:end], span[end+1:], nil
}
