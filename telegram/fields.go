package telegram

import "github.com/ftl/dsmr-p1/obis"

// All units that occur in the field table. Fields that decode a fixed-point
// value declare a pair of units related by a factor of 1000, so that both
// wire encodings of the same quantity yield the identical stored integer.
const (
	UnitNone  = ""
	UnitKWh   = "kWh"
	UnitWh    = "Wh"
	UnitKW    = "kW"
	UnitW     = "W"
	UnitV     = "V"
	UnitMV    = "mV"
	UnitA     = "A"
	UnitMA    = "mA"
	UnitM3    = "m3"
	UnitDM3   = "dm3"
	UnitKvarh = "kvarh"
	UnitHz    = "Hz"
)

// Field is one OBIS-tagged slot of a telegram. A field's value is meaningful
// only while Present returns true; name, identifier, and units are fixed at
// declaration time.
type Field interface {
	// Name returns the fixed textual name of this field, used for
	// diagnostics and serialization.
	Name() string
	// ID returns the OBIS identifier of this field.
	ID() obis.ID
	// Unit returns the unit label of this field's value, or "" for
	// unitless fields.
	Unit() string
	// Present reports whether this field was successfully decoded from the
	// current telegram.
	Present() bool

	// parse decodes the given value span into this field and returns the
	// unconsumed rest. On failure the field keeps its previous value and
	// presence.
	parse(span string) (string, error)
	reset()
	apply(v Visitor)
}

// fieldInfo carries the immutable identity shared by all field shapes.
type fieldInfo struct {
	name string
	id   obis.ID
}

func (f *fieldInfo) Name() string {
	return f.name
}

func (f *fieldInfo) ID() obis.ID {
	return f.id
}

// StringField decodes a parenthesized string with fixed length bounds.
type StringField struct {
	fieldInfo
	minLen  int
	maxLen  int
	value   string
	present bool
}

func newStringField(name string, id obis.ID, minLen, maxLen int) *StringField {
	return &StringField{fieldInfo: fieldInfo{name: name, id: id}, minLen: minLen, maxLen: maxLen}
}

func (f *StringField) Unit() string {
	return UnitNone
}

func (f *StringField) Present() bool {
	return f.present
}

// Value returns the decoded string. Check Present first.
func (f *StringField) Value() string {
	return f.value
}

func (f *StringField) parse(span string) (string, error) {
	text, rest, err := parseString(f.minLen, f.maxLen, span)
	if err != nil {
		return "", err
	}
	f.value = text
	f.present = true
	return rest, nil
}

func (f *StringField) reset() {
	f.value = ""
	f.present = false
}

func (f *StringField) apply(v Visitor) {
	v.VisitString(f)
}

// TimestampField decodes a 13-character timestamp (YYMMDDhhmmssX, X being
// 'S' for summer or 'W' for winter time). The characters are kept verbatim;
// decoding into calendar time is up to the consumer.
type TimestampField struct {
	StringField
}

func newTimestampField(name string, id obis.ID) *TimestampField {
	return &TimestampField{StringField{fieldInfo: fieldInfo{name: name, id: id}, minLen: 13, maxLen: 13}}
}

func (f *TimestampField) apply(v Visitor) {
	v.VisitTimestamp(f)
}

// IntField decodes a plain integer with the given unit marker.
type IntField struct {
	fieldInfo
	unit    string
	value   uint32
	present bool
}

func newIntField(name string, id obis.ID, unit string) *IntField {
	return &IntField{fieldInfo: fieldInfo{name: name, id: id}, unit: unit}
}

func (f *IntField) Unit() string {
	return f.unit
}

func (f *IntField) Present() bool {
	return f.present
}

// Value returns the decoded integer. Check Present first.
func (f *IntField) Value() uint32 {
	return f.value
}

func (f *IntField) parse(span string) (string, error) {
	value, rest, err := parseNumber(0, f.unit, span)
	if err != nil {
		return "", err
	}
	f.value = value
	f.present = true
	return rest, nil
}

func (f *IntField) reset() {
	f.value = 0
	f.present = false
}

func (f *IntField) apply(v Visitor) {
	v.VisitInt(f)
}

// FixedField decodes a fixed-point value that meters emit in one of two
// encodings: a decimal literal with up to three fraction digits tagged with
// the large unit, or a plain integer tagged with the small unit. The unit
// pair is related by a factor of 1000, so both encodings store the identical
// integer (see FixedValue).
type FixedField struct {
	fieldInfo
	unit    string
	intUnit string
	value   FixedValue
	present bool
}

func newFixedField(name string, id obis.ID, unit, intUnit string) *FixedField {
	return &FixedField{fieldInfo: fieldInfo{name: name, id: id}, unit: unit, intUnit: intUnit}
}

func (f *FixedField) Unit() string {
	return f.unit
}

// IntUnit returns the unit label of the fixed-point integer value, e.g. "W"
// for a field with unit "kW".
func (f *FixedField) IntUnit() string {
	return f.intUnit
}

func (f *FixedField) Present() bool {
	return f.present
}

// Value returns the decoded fixed-point value. Check Present first.
func (f *FixedField) Value() FixedValue {
	return f.value
}

func (f *FixedField) parse(span string) (string, error) {
	value, rest, err := parseFixed(f.unit, f.intUnit, span)
	if err != nil {
		return "", err
	}
	f.value = FixedValue{value}
	f.present = true
	return rest, nil
}

// parseFixed decodes the two-encoding fixed-point grammar. If both attempts
// fail, the error of the first attempt wins: it describes the expected
// format and makes the better diagnostic.
func parseFixed(unit, intUnit, span string) (uint32, string, error) {
	value, rest, floatErr := parseNumber(3, unit, span)
	if floatErr == nil {
		return value, rest, nil
	}
	// Some meter firmwares publish integer values in the small unit instead,
	// e.g. "1-0:1.8.0(000441879*Wh)" instead of "1-0:1.8.0(000441.879*kWh)".
	value, rest, intErr := parseNumber(0, intUnit, span)
	if intErr == nil {
		return value, rest, nil
	}
	return 0, "", floatErr
}

func (f *FixedField) reset() {
	f.value = FixedValue{}
	f.present = false
}

func (f *FixedField) apply(v Visitor) {
	v.VisitFixed(f)
}

// TimestampedFixedField decodes a 13-character timestamp group immediately
// followed by a fixed-point value group, e.g. "(150117180000W)(00473.789*m3)".
// Assignment is all or nothing: if the numeric group fails after a valid
// timestamp, the field keeps its previous value and stays absent.
type TimestampedFixedField struct {
	fieldInfo
	unit    string
	intUnit string
	value   TimestampedFixedValue
	present bool
}

func newTimestampedFixedField(name string, id obis.ID, unit, intUnit string) *TimestampedFixedField {
	return &TimestampedFixedField{fieldInfo: fieldInfo{name: name, id: id}, unit: unit, intUnit: intUnit}
}

func (f *TimestampedFixedField) Unit() string {
	return f.unit
}

// IntUnit returns the unit label of the fixed-point integer value.
func (f *TimestampedFixedField) IntUnit() string {
	return f.intUnit
}

func (f *TimestampedFixedField) Present() bool {
	return f.present
}

// Value returns the decoded timestamped value. Check Present first.
func (f *TimestampedFixedField) Value() TimestampedFixedValue {
	return f.value
}

func (f *TimestampedFixedField) parse(span string) (string, error) {
	timestamp, rest, err := parseString(13, 13, span)
	if err != nil {
		return "", err
	}
	consumed := len(span) - len(rest)
	value, rest, err := parseFixed(f.unit, f.intUnit, rest)
	if err != nil {
		return "", shiftOffset(err, consumed)
	}
	f.value = TimestampedFixedValue{FixedValue: FixedValue{value}, Timestamp: timestamp}
	f.present = true
	return rest, nil
}

func (f *TimestampedFixedField) reset() {
	f.value = TimestampedFixedValue{}
	f.present = false
}

func (f *TimestampedFixedField) apply(v Visitor) {
	v.VisitTimestampedFixed(f)
}

// RawField keeps the value span verbatim, including any parentheses, and
// always consumes it completely.
type RawField struct {
	fieldInfo
	value   string
	present bool
}

func newRawField(name string, id obis.ID) *RawField {
	return &RawField{fieldInfo: fieldInfo{name: name, id: id}}
}

func (f *RawField) Unit() string {
	return UnitNone
}

func (f *RawField) Present() bool {
	return f.present
}

// Value returns the verbatim value span. Check Present first.
func (f *RawField) Value() string {
	return f.value
}

func (f *RawField) parse(span string) (string, error) {
	if len(span) == 0 {
		return "", newParseError(0, "empty value")
	}
	f.value = span
	f.present = true
	return "", nil
}

func (f *RawField) reset() {
	f.value = ""
	f.present = false
}

func (f *RawField) apply(v Visitor) {
	v.VisitRaw(f)
}
