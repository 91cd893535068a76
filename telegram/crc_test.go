package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	// check value from the CRC16/ARC reference
	assert.Equal(t, uint16(0xBB3D), Checksum("123456789"))
	assert.Equal(t, uint16(0), Checksum(""))
}

func TestChecksumOfTelegramFrame(t *testing.T) {
	frame := strings.Join(testTelegramLines, "\r\n") + "\r\n!"
	assert.Equal(t, uint16(0x2140), Checksum(frame))
}
