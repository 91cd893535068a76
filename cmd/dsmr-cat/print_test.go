package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/dsmr-p1/telegram"
)

const testFrame = "/ISk5\\2MT382-1000\r\n" +
	"\r\n" +
	"0-0:1.0.0(101209113020W)\r\n" +
	"0-0:96.14.0(0002)\r\n" +
	"1-0:1.7.0(00.317*kW)\r\n" +
	"0-0:96.7.21(00004)\r\n" +
	"0-1:24.2.1(101209112500W)(12785.123*m3)\r\n" +
	"!\r\n"

func parseTestFrame(t *testing.T) *telegram.Telegram {
	t.Helper()
	tgm := telegram.New()
	err := tgm.Parse(testFrame, telegram.WithoutChecksum())
	require.NoError(t, err)
	return tgm
}

func TestPrintFields(t *testing.T) {
	tgm := parseTestFrame(t)
	buffer := &bytes.Buffer{}

	err := printFields(buffer, tgm)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, []string{
		"identification: ISk5\\2MT382-1000",
		"timestamp: 101209113020W",
		"electricity_tariff: 0002",
		"power_delivered: 0.317 kW (317 W)",
		"power_failures: 4",
		"gas_delivered: 12785.123 m3 at 101209112500W",
	}, lines)
}

func TestPrintJSON(t *testing.T) {
	tgm := parseTestFrame(t)
	buffer := &bytes.Buffer{}

	err := printJSON(buffer, tgm)

	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &fields))

	assert.Equal(t, "101209113020W", fields["timestamp"])
	assert.Equal(t, "0002", fields["electricity_tariff"])
	assert.Equal(t, float64(4), fields["power_failures"])

	power, ok := fields["power_delivered"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 0.317, power["value"], 0.0005)
	assert.Equal(t, "kW", power["unit"])

	gas, ok := fields["gas_delivered"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "101209112500W", gas["timestamp"])
}
