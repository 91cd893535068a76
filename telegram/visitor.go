package telegram

// Visitor is the generic operation over the closed set of field shapes.
// Telegram.Apply calls back with the concrete field type, so a visitor can
// be added (printer, serializer, aggregator) without touching the field
// declarations, and it sees each field with full static type information.
type Visitor interface {
	VisitString(f *StringField)
	VisitTimestamp(f *TimestampField)
	VisitInt(f *IntField)
	VisitFixed(f *FixedField)
	VisitTimestampedFixed(f *TimestampedFixedField)
	VisitRaw(f *RawField)
}

// Apply invokes the visitor for every present field of this telegram, in
// declaration order. Absent fields are skipped.
func (t *Telegram) Apply(v Visitor) {
	for _, f := range t.fields {
		if !f.Present() {
			continue
		}
		f.apply(v)
	}
}
