package serial

import (
	"errors"
	"io"

	"github.com/jacobsa/go-serial/serial"
)

var (
	NoP1Found = errors.New("no P1 converter device found")
)

// DefaultBaudRate is the line speed of DSMR 4 and later meters. Older
// meters run at 9600 baud.
const DefaultBaudRate = 115200

// Open the serial port with the given name for reading P1 telegrams.
func Open(portName string) (io.ReadCloser, error) {
	return OpenWithBaudRate(portName, DefaultBaudRate)
}

// OpenWithBaudRate opens the serial port with the given name and baud rate.
// P1 is a one-way broadcast interface, the returned port is read-only.
func OpenWithBaudRate(portName string, baudRate uint) (io.ReadCloser, error) {
	portConfig := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		MinimumReadSize:       1,
		InterCharacterTimeout: 100,
	}

	return serial.Open(portConfig)
}
