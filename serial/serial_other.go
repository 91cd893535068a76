//go:build !linux

package serial

func FindMeterPortName() (string, error) {
	// no-op for other OSes
	return "", NoP1Found
}
