package telegram

// Checksum calculates the CRC16 checksum of a P1 frame as defined in [P1]:
// polynomial 0xA001 (reversed 0x8005), initial value 0, no final XOR. The
// frame covers everything from the leading '/' up to and including the '!'.
func Checksum(data string) uint16 {
	var crc uint16
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i])
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0xA001
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}
