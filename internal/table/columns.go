package table

import (
	"strings"

	"types-editor/internal/types"
)

// Column describes one leaf column of the grid
type Column struct {
	Key      string
	Title    string
	Group    string
	Editable bool
}

const (
	ColumnName   = "name"
	ColumnUsages = "usages"

	QuantityGroup = "Quantity"
)

var columns = []Column{
	{Key: ColumnName, Title: "Item"},
	{Key: ColumnUsages, Title: "Usages"},
	{Key: types.FieldNominal, Title: "Nominal", Editable: true},
	{Key: types.FieldLifetime, Title: "Lifetime", Editable: true},
	{Key: types.FieldRestock, Title: "Restock", Editable: true},
	{Key: types.FieldMin, Title: "Min. amount", Editable: true},
	{Key: types.FieldQuantMin, Title: "Min. quantity", Group: QuantityGroup, Editable: true},
	{Key: types.FieldQuantMax, Title: "Max. quantity", Group: QuantityGroup, Editable: true},
	{Key: types.FieldCost, Title: "Cost", Editable: true},
}

// Columns returns the grid columns in display order
func Columns() []Column {
	return append([]Column(nil), columns...)
}

// ColumnByKey finds a column definition
func ColumnByKey(key string) (Column, bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// CellText renders the value shown for item in column key
func CellText(item types.Item, key string) string {
	switch key {
	case ColumnName:
		return item.Name
	case ColumnUsages:
		return strings.Join(item.Usages, ", ")
	}
	v, err := item.Field(key)
	if err != nil {
		return ""
	}
	return types.FormatValue(v)
}
