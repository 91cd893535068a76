//go:build linux

package serial

import (
	"strings"

	"github.com/hedhyw/Go-Serial-Detector/pkg/v1/serialdet"
)

// FindMeterPortName scans the available serial devices for a P1 converter
// cable. The common cables are FTDI or Prolific USB serial adapters that
// announce themselves accordingly.
func FindMeterPortName() (string, error) {
	devices, err := serialdet.List()
	if err != nil {
		return "", err
	}

	for _, device := range devices {
		description := strings.ToLower(device.Description())
		if strings.Contains(description, "p1") ||
			strings.Contains(description, "ft232") ||
			strings.Contains(description, "pl2303") {
			return device.Path(), nil
		}
	}

	return "", NoP1Found
}
