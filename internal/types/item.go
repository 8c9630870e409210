package types

import (
	"image/color"
	"strconv"
)

// Item is the decoded form of one <type> element
type Item struct {
	Name     string
	Nominal  *int
	Lifetime *int
	Restock  *int
	Min      *int
	QuantMin *int
	QuantMax *int
	Cost     *int
	Category *string
	Usages   []string
}

// Numeric field keys, in column order
const (
	FieldNominal  = "nominal"
	FieldLifetime = "lifetime"
	FieldRestock  = "restock"
	FieldMin      = "min"
	FieldQuantMin = "quantmin"
	FieldQuantMax = "quantmax"
	FieldCost     = "cost"
)

type numericField struct {
	name string
	ref  func(*Item) **int
}

var numericFields = []numericField{
	{FieldNominal, func(it *Item) **int { return &it.Nominal }},
	{FieldLifetime, func(it *Item) **int { return &it.Lifetime }},
	{FieldRestock, func(it *Item) **int { return &it.Restock }},
	{FieldMin, func(it *Item) **int { return &it.Min }},
	{FieldQuantMin, func(it *Item) **int { return &it.QuantMin }},
	{FieldQuantMax, func(it *Item) **int { return &it.QuantMax }},
	{FieldCost, func(it *Item) **int { return &it.Cost }},
}

// FieldNames lists the optional numeric fields of an Item
func FieldNames() []string {
	names := make([]string, len(numericFields))
	for i, f := range numericFields {
		names[i] = f.name
	}
	return names
}

// IsField reports whether name is one of the numeric fields
func IsField(name string) bool {
	return lookupField(name) != nil
}

func lookupField(name string) *numericField {
	for i := range numericFields {
		if numericFields[i].name == name {
			return &numericFields[i]
		}
	}
	return nil
}

// Field returns the value of a numeric field, nil when absent
func (it *Item) Field(name string) (*int, error) {
	f := lookupField(name)
	if f == nil {
		return nil, unknownField(name)
	}
	return *f.ref(it), nil
}

// SetField replaces a numeric field. A nil value marks the field absent.
func (it *Item) SetField(name string, value *int) error {
	f := lookupField(name)
	if f == nil {
		return unknownField(name)
	}
	*f.ref(it) = clonePtr(value)
	return nil
}

// Clone returns a deep copy sharing no pointers with it
func (it Item) Clone() Item {
	out := it
	for _, f := range numericFields {
		p := f.ref(&out)
		*p = clonePtr(*p)
	}
	if it.Category != nil {
		c := *it.Category
		out.Category = &c
	}
	if it.Usages != nil {
		out.Usages = append([]string(nil), it.Usages...)
	}
	return out
}

func clonePtr(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

// Int is a helper for building optional values
func Int(v int) *int {
	return &v
}

// FormatValue renders an optional number, absent as the empty string
func FormatValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

var tagColors = map[string]color.NRGBA{
	"weapons":    {R: 0xf5, G: 0x22, B: 0x2d, A: 0xff},
	"food":       {R: 0x52, G: 0xc4, B: 0x1a, A: 0xff},
	"clothes":    {R: 0x72, G: 0x2e, B: 0xd1, A: 0xff},
	"tools":      {R: 0x18, G: 0x90, B: 0xff, A: 0xff},
	"containers": {R: 0x13, G: 0xc2, B: 0xc2, A: 0xff},
}

var defaultTagColor = color.NRGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}

// TagColor picks the display colour of a category tag
func TagColor(category string) color.NRGBA {
	if c, ok := tagColors[category]; ok {
		return c
	}
	return defaultTagColor
}
