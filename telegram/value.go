package telegram

// FixedValue holds a non-negative decimal quantity with at most three
// fraction digits as a fixed-point integer in thousandths. A reading of
// 1.234 kWh is stored as 1234, which is the same reading in Wh. This avoids
// floating point arithmetic during decoding; Val reconstructs the decimal
// value when needed.
type FixedValue struct {
	value uint32
}

// Val returns the decimal value, e.g. 0.317 for a stored 317.
func (v FixedValue) Val() float64 {
	return float64(v.value) / 1000.0
}

// Int returns the fixed-point value in thousandths, e.g. 317 for 0.317 kW.
// This is the value in the field's integer unit (W in this example).
func (v FixedValue) Int() uint32 {
	return v.value
}

// TimestampedFixedValue is a FixedValue together with the 13-character
// timestamp (YYMMDDhhmmssX, X being the DST marker) that the meter attached
// to the reading. The timestamp is kept verbatim.
type TimestampedFixedValue struct {
	FixedValue
	Timestamp string
}
