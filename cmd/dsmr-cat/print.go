package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ftl/dsmr-p1/telegram"
)

// printFields writes one "name: value unit" line per present field.
func printFields(w io.Writer, tgm *telegram.Telegram) error {
	printer := &fieldPrinter{w: w}
	tgm.Apply(printer)
	return printer.err
}

type fieldPrinter struct {
	w   io.Writer
	err error
}

func (p *fieldPrinter) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *fieldPrinter) VisitString(f *telegram.StringField) {
	p.printf("%s: %s\n", f.Name(), f.Value())
}

func (p *fieldPrinter) VisitTimestamp(f *telegram.TimestampField) {
	p.printf("%s: %s\n", f.Name(), f.Value())
}

func (p *fieldPrinter) VisitInt(f *telegram.IntField) {
	if f.Unit() == telegram.UnitNone {
		p.printf("%s: %d\n", f.Name(), f.Value())
		return
	}
	p.printf("%s: %d %s\n", f.Name(), f.Value(), f.Unit())
}

func (p *fieldPrinter) VisitFixed(f *telegram.FixedField) {
	p.printf("%s: %.3f %s (%d %s)\n", f.Name(), f.Value().Val(), f.Unit(), f.Value().Int(), f.IntUnit())
}

func (p *fieldPrinter) VisitTimestampedFixed(f *telegram.TimestampedFixedField) {
	p.printf("%s: %.3f %s at %s\n", f.Name(), f.Value().Val(), f.Unit(), f.Value().Timestamp)
}

func (p *fieldPrinter) VisitRaw(f *telegram.RawField) {
	p.printf("%s: %s\n", f.Name(), f.Value())
}

// printJSON writes all present fields as one JSON object keyed by field name.
func printJSON(w io.Writer, tgm *telegram.Telegram) error {
	collector := &jsonCollector{fields: make(map[string]interface{})}
	tgm.Apply(collector)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(collector.fields)
}

type jsonCollector struct {
	fields map[string]interface{}
}

func (c *jsonCollector) VisitString(f *telegram.StringField) {
	c.fields[f.Name()] = f.Value()
}

func (c *jsonCollector) VisitTimestamp(f *telegram.TimestampField) {
	c.fields[f.Name()] = f.Value()
}

func (c *jsonCollector) VisitInt(f *telegram.IntField) {
	c.fields[f.Name()] = f.Value()
}

func (c *jsonCollector) VisitFixed(f *telegram.FixedField) {
	c.fields[f.Name()] = map[string]interface{}{
		"value": f.Value().Val(),
		"unit":  f.Unit(),
	}
}

func (c *jsonCollector) VisitTimestampedFixed(f *telegram.TimestampedFixedField) {
	c.fields[f.Name()] = map[string]interface{}{
		"value":     f.Value().Val(),
		"unit":      f.Unit(),
		"timestamp": f.Value().Timestamp,
	}
}

func (c *jsonCollector) VisitRaw(f *telegram.RawField) {
	c.fields[f.Name()] = f.Value()
}
