package query

import "fmt"

// Field names one projectable snapshot attribute. The enumeration is
// stable; projection is a filter over it, never reflection.
type Field uint8

const (
	FieldSymbol Field = iota
	FieldEpoch
	FieldBids
	FieldAsks
	FieldLastTradePrice
	FieldLastTradeQty
	numFields
)

var fieldNames = [numFields]string{
	FieldSymbol:         "symbol",
	FieldEpoch:          "epoch",
	FieldBids:           "bids",
	FieldAsks:           "asks",
	FieldLastTradePrice: "last_trade_price",
	FieldLastTradeQty:   "last_trade_quantity",
}

func (f Field) String() string {
	if f >= numFields {
		return fmt.Sprintf("field(%d)", uint8(f))
	}
	return fieldNames[f]
}

// ParseField resolves an external field name.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// FieldSet is a bitmask over Field.
type FieldSet uint8

// AllFields selects every projectable field.
const AllFields = FieldSet(1<<numFields) - 1

func NewFieldSet(fields ...Field) FieldSet {
	var fs FieldSet
	for _, f := range fields {
		fs |= 1 << f
	}
	return fs
}

func (fs FieldSet) Has(f Field) bool { return fs&(1<<f) != 0 }

func (fs FieldSet) IsEmpty() bool { return fs == 0 }
