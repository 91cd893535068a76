package telegram

import "github.com/ftl/dsmr-p1/obis"

// MBus device channels as commonly wired in Dutch installations. The gas
// meter fields below use GasMBusID; meters with a different channel layout
// need their own field table.
const (
	GasMBusID = 1
)

// Telegram holds one typed, presence-flagged field per known OBIS code.
// One telegram instance is owned and mutated by exactly one parsing pass at
// a time; reuse across messages requires a Reset in between, Parse does not
// reset by itself.
type Telegram struct {
	// Identification is the specially-formatted first line of the message,
	// kept verbatim without the leading slash.
	Identification *RawField
	// Timestamp is the date-time stamp of the P1 message.
	Timestamp   *TimestampField
	EquipmentID *StringField

	// Energy meter readings in 0.001 kWh.
	EnergyDeliveredLux     *FixedField
	EnergyDeliveredTariff1 *FixedField
	EnergyDeliveredTariff2 *FixedField
	EnergyReturnedLux      *FixedField
	EnergyReturnedTariff1  *FixedField
	EnergyReturnedTariff2  *FixedField
	EnergyCombinedTotal    *FixedField

	ReactiveEnergyImported *FixedField
	ReactiveEnergyExported *FixedField

	// ElectricityTariff is the current tariff indicator, e.g. "0001". It can
	// be used to switch tariff dependent loads.
	ElectricityTariff *StringField

	// Actual power in 1 W resolution.
	PowerDelivered       *FixedField
	PowerReturned        *FixedField
	ElectricityThreshold *FixedField

	ElectricitySwitchPosition *IntField
	PowerFailures             *IntField
	LongPowerFailures         *IntField

	VoltageSagsL1   *IntField
	VoltageSagsL2   *IntField
	VoltageSagsL3   *IntField
	VoltageSwellsL1 *IntField
	VoltageSwellsL2 *IntField
	VoltageSwellsL3 *IntField

	// TextMessage carries up to 2048 characters of free text, hex-encoded by
	// most meters (see DecodeHexText).
	TextMessage *StringField

	// Instantaneous voltage per phase in 0.1 V resolution.
	VoltageL1 *FixedField
	VoltageL2 *FixedField
	VoltageL3 *FixedField

	// Instantaneous current per phase in 1 A resolution.
	CurrentL1 *FixedField
	CurrentL2 *FixedField
	CurrentL3 *FixedField

	MaximumCurrentL1 *FixedField
	MaximumCurrentL2 *FixedField
	MaximumCurrentL3 *FixedField

	Frequency *FixedField

	// Instantaneous power factor, total and per phase. The wire format
	// varies between meters, so these are kept raw.
	PowerFactor   *RawField
	PowerFactorL1 *RawField
	PowerFactorL2 *RawField
	PowerFactorL3 *RawField

	MonthlyData   *StringField
	DeviceName    *StringField
	BreakerStatus *StringField

	GasEquipmentID *StringField
	// GasDelivered is the gas meter reading with the timestamp of the last
	// reading, e.g. "0-1:24.2.1(150117180000W)(00473.789*m3)".
	GasDelivered *TimestampedFixedField

	fields []Field
	byID   map[obis.ID]Field
}

// New returns a Telegram with all known fields declared and absent.
func New() *Telegram {
	t := &Telegram{byID: make(map[obis.ID]Field)}

	t.Identification = t.addRaw("identification", obis.MakeID())
	t.Timestamp = t.addTimestamp("timestamp", obis.MakeID(0, 0, 1, 0, 0))
	t.EquipmentID = t.addString("equipment_id", obis.MakeID(0, 0, 96, 1, 0), 0, 96)

	t.EnergyDeliveredLux = t.addFixed("energy_delivered_lux", obis.MakeID(1, 0, 1, 8, 0), UnitKWh, UnitWh)
	t.EnergyDeliveredTariff1 = t.addFixed("energy_delivered_tariff1", obis.MakeID(1, 0, 1, 8, 1), UnitKWh, UnitWh)
	t.EnergyDeliveredTariff2 = t.addFixed("energy_delivered_tariff2", obis.MakeID(1, 0, 1, 8, 2), UnitKWh, UnitWh)
	t.EnergyReturnedLux = t.addFixed("energy_returned_lux", obis.MakeID(1, 0, 2, 8, 0), UnitKWh, UnitWh)
	t.EnergyReturnedTariff1 = t.addFixed("energy_returned_tariff1", obis.MakeID(1, 0, 2, 8, 1), UnitKWh, UnitWh)
	t.EnergyReturnedTariff2 = t.addFixed("energy_returned_tariff2", obis.MakeID(1, 0, 2, 8, 2), UnitKWh, UnitWh)
	t.EnergyCombinedTotal = t.addFixed("energy_combined_total", obis.MakeID(1, 0, 15, 8, 0), UnitKWh, UnitWh)

	t.ReactiveEnergyImported = t.addFixed("reactive_energy_imported", obis.MakeID(1, 0, 3, 8, 0), UnitKvarh, UnitKvarh)
	t.ReactiveEnergyExported = t.addFixed("reactive_energy_exported", obis.MakeID(1, 0, 4, 8, 0), UnitKvarh, UnitKvarh)

	t.ElectricityTariff = t.addString("electricity_tariff", obis.MakeID(0, 0, 96, 14, 0), 4, 4)

	t.PowerDelivered = t.addFixed("power_delivered", obis.MakeID(1, 0, 1, 7, 0), UnitKW, UnitW)
	t.PowerReturned = t.addFixed("power_returned", obis.MakeID(1, 0, 2, 7, 0), UnitKW, UnitW)
	t.ElectricityThreshold = t.addFixed("electricity_threshold", obis.MakeID(0, 0, 17, 0, 0), UnitKW, UnitW)

	t.ElectricitySwitchPosition = t.addInt("electricity_switch_position", obis.MakeID(0, 0, 96, 3, 10), UnitNone)
	t.PowerFailures = t.addInt("power_failures", obis.MakeID(0, 0, 96, 7, 21), UnitNone)
	t.LongPowerFailures = t.addInt("long_power_failures", obis.MakeID(0, 0, 96, 7, 9), UnitNone)

	t.VoltageSagsL1 = t.addInt("voltage_sags_l1", obis.MakeID(1, 0, 32, 32, 0), UnitNone)
	t.VoltageSagsL2 = t.addInt("voltage_sags_l2", obis.MakeID(1, 0, 52, 32, 0), UnitNone)
	t.VoltageSagsL3 = t.addInt("voltage_sags_l3", obis.MakeID(1, 0, 72, 32, 0), UnitNone)
	t.VoltageSwellsL1 = t.addInt("voltage_swells_l1", obis.MakeID(1, 0, 32, 36, 0), UnitNone)
	t.VoltageSwellsL2 = t.addInt("voltage_swells_l2", obis.MakeID(1, 0, 52, 36, 0), UnitNone)
	t.VoltageSwellsL3 = t.addInt("voltage_swells_l3", obis.MakeID(1, 0, 72, 36, 0), UnitNone)

	t.TextMessage = t.addString("text_message", obis.MakeID(0, 0, 96, 13, 0), 0, 2048)

	t.VoltageL1 = t.addFixed("voltage_l1", obis.MakeID(1, 0, 32, 7, 0), UnitV, UnitMV)
	t.VoltageL2 = t.addFixed("voltage_l2", obis.MakeID(1, 0, 52, 7, 0), UnitV, UnitMV)
	t.VoltageL3 = t.addFixed("voltage_l3", obis.MakeID(1, 0, 72, 7, 0), UnitV, UnitMV)

	t.CurrentL1 = t.addFixed("current_l1", obis.MakeID(1, 0, 31, 7, 0), UnitA, UnitMA)
	t.CurrentL2 = t.addFixed("current_l2", obis.MakeID(1, 0, 51, 7, 0), UnitA, UnitMA)
	t.CurrentL3 = t.addFixed("current_l3", obis.MakeID(1, 0, 71, 7, 0), UnitA, UnitMA)

	t.MaximumCurrentL1 = t.addFixed("maximum_current_l1", obis.MakeID(1, 0, 31, 4, 0), UnitA, UnitMA)
	t.MaximumCurrentL2 = t.addFixed("maximum_current_l2", obis.MakeID(1, 0, 51, 4, 0), UnitA, UnitMA)
	t.MaximumCurrentL3 = t.addFixed("maximum_current_l3", obis.MakeID(1, 0, 71, 4, 0), UnitA, UnitMA)

	t.Frequency = t.addFixed("frequency", obis.MakeID(1, 0, 14, 7, 0), UnitHz, UnitHz)

	t.PowerFactor = t.addRaw("power_factor", obis.MakeID(1, 0, 13, 7, 0))
	t.PowerFactorL1 = t.addRaw("power_factor_l1", obis.MakeID(1, 0, 33, 7, 0))
	t.PowerFactorL2 = t.addRaw("power_factor_l2", obis.MakeID(1, 0, 53, 7, 0))
	t.PowerFactorL3 = t.addRaw("power_factor_l3", obis.MakeID(1, 0, 73, 7, 0))

	t.MonthlyData = t.addString("monthly_data", obis.MakeID(0, 0, 98, 1, 0), 0, 2048)
	t.DeviceName = t.addString("device_name", obis.MakeID(0, 0, 42, 0, 0), 0, 64)
	t.BreakerStatus = t.addString("breaker_status", obis.MakeID(0, 0, 96, 50, 68), 0, 2048)

	t.GasEquipmentID = t.addString("gas_equipment_id", obis.MakeID(0, GasMBusID, 96, 1, 0), 0, 96)
	t.GasDelivered = t.addTimestampedFixed("gas_delivered", obis.MakeID(0, GasMBusID, 24, 2, 1), UnitM3, UnitDM3)

	return t
}

// Field looks up a field by its OBIS identifier. An unknown identifier is
// not an error, the caller decides how to handle unconsumed lines.
func (t *Telegram) Field(id obis.ID) (Field, bool) {
	f, ok := t.byID[id]
	return f, ok
}

// Fields returns all declared fields in declaration order, present or not.
func (t *Telegram) Fields() []Field {
	result := make([]Field, len(t.fields))
	copy(result, t.fields)
	return result
}

// Reset clears the values and presence flags of all fields, preparing this
// telegram instance for the next message.
func (t *Telegram) Reset() {
	for _, f := range t.fields {
		f.reset()
	}
}

func (t *Telegram) register(f Field) {
	t.fields = append(t.fields, f)
	t.byID[f.ID()] = f
}

func (t *Telegram) addString(name string, id obis.ID, minLen, maxLen int) *StringField {
	f := newStringField(name, id, minLen, maxLen)
	t.register(f)
	return f
}

func (t *Telegram) addTimestamp(name string, id obis.ID) *TimestampField {
	f := newTimestampField(name, id)
	t.register(f)
	return f
}

func (t *Telegram) addInt(name string, id obis.ID, unit string) *IntField {
	f := newIntField(name, id, unit)
	t.register(f)
	return f
}

func (t *Telegram) addFixed(name string, id obis.ID, unit, intUnit string) *FixedField {
	f := newFixedField(name, id, unit, intUnit)
	t.register(f)
	return f
}

func (t *Telegram) addTimestampedFixed(name string, id obis.ID, unit, intUnit string) *TimestampedFixedField {
	f := newTimestampedFixedField(name, id, unit, intUnit)
	t.register(f)
	return f
}

func (t *Telegram) addRaw(name string, id obis.ID) *RawField {
	f := newRawField(name, id)
	t.register(f)
	return f
}
