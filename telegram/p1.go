package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ftl/dsmr-p1/obis"
)

// ParseOption adjusts how Parse handles a telegram frame.
type ParseOption func(*parseConfig)

type parseConfig struct {
	verifyChecksum bool
	lenient        bool
	unknownLine    func(id obis.ID, value string)
}

// WithoutChecksum disables the checksum verification. This is required for
// meters up to DSMR 2.2, which do not send a checksum at all.
func WithoutChecksum() ParseOption {
	return func(config *parseConfig) {
		config.verifyChecksum = false
	}
}

// WithLenientParsing makes Parse skip lines that cannot be decoded instead
// of aborting. Skipped fields keep their previous value and presence.
func WithLenientParsing() ParseOption {
	return func(config *parseConfig) {
		config.lenient = true
	}
}

// WithUnknownLineHandler installs a callback for lines whose OBIS identifier
// is not in the field table. Without a handler such lines are skipped
// silently; an unknown identifier is never an error of the parser itself.
func WithUnknownLineHandler(handler func(id obis.ID, value string)) ParseOption {
	return func(config *parseConfig) {
		config.unknownLine = handler
	}
}

// Parse decodes one complete P1 frame into this telegram: the
// identification line, all OBIS-tagged value lines, and the trailing
// checksum. Fields that do not occur in the frame are left untouched; call
// Reset first when reusing a telegram instance across messages.
func (t *Telegram) Parse(data string, opts ...ParseOption) error {
	config := parseConfig{verifyChecksum: true}
	for _, opt := range opts {
		opt(&config)
	}

	body, checksumText, err := splitFrame(data)
	if err != nil {
		return err
	}
	if config.verifyChecksum {
		err = verifyChecksum(body, checksumText)
		if err != nil {
			return err
		}
	}

	lines := strings.Split(body, "\n")
	identification := strings.TrimSuffix(lines[0], "\r")
	if !strings.HasPrefix(identification, "/") {
		return fmt.Errorf("invalid telegram, identification line expected: %q", identification)
	}
	_, err = t.Identification.parse(identification[1:])
	if err != nil {
		return fmt.Errorf("cannot parse identification %q: %w", identification, err)
	}

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		id, value, err := obis.ParseID(line)
		if err != nil {
			if config.lenient {
				continue
			}
			return fmt.Errorf("invalid telegram line %q: %w", line, err)
		}

		field, ok := t.Field(id)
		if !ok {
			if config.unknownLine != nil {
				config.unknownLine(id, value)
			}
			continue
		}

		rest, err := field.parse(value)
		if err != nil {
			if config.lenient {
				continue
			}
			return fmt.Errorf("cannot parse field %s (%s) from %q: %w", field.Name(), id, value, err)
		}
		if rest != "" {
			if config.lenient {
				continue
			}
			return fmt.Errorf("trailing data after field %s (%s): %q", field.Name(), id, rest)
		}
	}

	return nil
}

// splitFrame separates the frame body (from '/' up to and including '!')
// from the checksum digits that follow the '!'.
func splitFrame(data string) (string, string, error) {
	if len(data) == 0 || data[0] != '/' {
		return "", "", fmt.Errorf("invalid telegram, must start with '/'")
	}
	end := strings.LastIndexByte(data, '!')
	if end == -1 {
		return "", "", fmt.Errorf("invalid telegram, terminating '!' missing")
	}
	return data[:end], strings.TrimSpace(data[end+1:]), nil
}

func verifyChecksum(body string, checksumText string) error {
	if len(checksumText) != 4 {
		return fmt.Errorf("invalid checksum %q, 4 hex digits expected", checksumText)
	}
	expected, err := strconv.ParseUint(checksumText, 16, 16)
	if err != nil {
		return fmt.Errorf("invalid checksum %q: %v", checksumText, err)
	}
	actual := Checksum(body + "!")
	if actual != uint16(expected) {
		return fmt.Errorf("checksum mismatch: calculated 0x%04X, telegram says 0x%04X", actual, expected)
	}
	return nil
}
