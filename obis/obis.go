package obis

import (
	"fmt"
	"strconv"
	"strings"
)

// Unused marks a value group that is not specified by an identifier.
const Unused uint8 = 255

// ID identifies a quantity within a P1 telegram by its six OBIS value
// groups (A-B:C.D.E.F). Unspecified trailing groups are set to Unused.
// ID is a comparable value type and may be used as a map key.
type ID struct {
	A, B, C, D, E, F uint8
}

// MakeID returns the ID with the given value groups. Groups that are
// not given are set to Unused.
func MakeID(groups ...uint8) ID {
	result := ID{Unused, Unused, Unused, Unused, Unused, Unused}
	fields := []*uint8{&result.A, &result.B, &result.C, &result.D, &result.E, &result.F}
	for i, group := range groups {
		if i >= len(fields) {
			break
		}
		*fields[i] = group
	}
	return result
}

// ParseID parses the textual A-B:C.D.E prefix of a telegram line into an
// ID and returns the rest of the line. An optional sixth group .F is
// accepted as well. The value part of the line, everything starting with
// the first opening parenthesis, is returned unparsed.
func ParseID(s string) (ID, string, error) {
	end := strings.IndexByte(s, '(')
	if end == -1 {
		end = len(s)
	}
	idPart := s[:end]
	rest := s[end:]

	dash := strings.IndexByte(idPart, '-')
	colon := strings.IndexByte(idPart, ':')
	if dash == -1 || colon == -1 || dash > colon {
		return ID{}, "", fmt.Errorf("invalid OBIS identifier %q", idPart)
	}

	groups := make([]uint8, 0, 6)
	parts := []string{idPart[:dash], idPart[dash+1 : colon]}
	parts = append(parts, strings.Split(idPart[colon+1:], ".")...)
	if len(parts) < 5 || len(parts) > 6 {
		return ID{}, "", fmt.Errorf("invalid OBIS identifier %q: wrong group count", idPart)
	}
	for _, part := range parts {
		value, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return ID{}, "", fmt.Errorf("invalid OBIS identifier %q: %v", idPart, err)
		}
		groups = append(groups, uint8(value))
	}

	return MakeID(groups...), rest, nil
}

func (id ID) String() string {
	result := fmt.Sprintf("%d-%d:%d.%d.%d", id.A, id.B, id.C, id.D, id.E)
	if id.F != Unused {
		result += fmt.Sprintf(".%d", id.F)
	}
	return result
}
