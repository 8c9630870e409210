package table

import (
	"testing"

	"types-editor/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []types.Item {
	food := "food"
	return []types.Item{
		{Name: "apple", Nominal: types.Int(20), Restock: types.Int(0), Category: &food},
		{Name: "AKM", Nominal: types.Int(5), Lifetime: types.Int(28800), QuantMin: types.Int(-1), QuantMax: types.Int(-1), Cost: types.Int(100), Usages: []string{"Military"}},
	}
}

func loadedModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()
	m.Load(sampleItems())
	require.Equal(t, 2, m.Len())
	return m
}

func TestPatchChangesOnlyGivenField(t *testing.T) {
	m := loadedModel(t)
	before := m.Records()

	err := m.Patch(Patch{Name: "apple", Fields: map[string]*int{types.FieldNominal: types.Int(50)}})
	require.NoError(t, err)

	after := m.Records()
	want := before[0].Clone()
	want.Nominal = types.Int(50)
	assert.Equal(t, want, after[0])
	assert.Equal(t, before[1], after[1])
}

func TestPatchCanMarkFieldAbsent(t *testing.T) {
	m := loadedModel(t)

	require.NoError(t, m.Patch(Patch{Name: "AKM", Fields: map[string]*int{types.FieldCost: nil}}))

	akm, ok := m.Lookup("AKM")
	require.True(t, ok)
	assert.Nil(t, akm.Cost)
	assert.Equal(t, types.Int(5), akm.Nominal)
}

func TestPatchUnknownKeyLeavesCollectionUnchanged(t *testing.T) {
	m := loadedModel(t)
	before := m.Records()

	err := m.Patch(Patch{Name: "pear", Fields: map[string]*int{types.FieldNominal: types.Int(1)}})

	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, before, m.Records())
}

func TestPatchUnknownFieldIsRejectedWhole(t *testing.T) {
	m := loadedModel(t)
	before := m.Records()

	err := m.Patch(Patch{Name: "apple", Fields: map[string]*int{
		types.FieldNominal: types.Int(1),
		"weight":           types.Int(2),
	}})

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, before, m.Records())
}

func TestRecordsReturnsCopies(t *testing.T) {
	m := loadedModel(t)

	records := m.Records()
	*records[0].Nominal = 999

	apple, _ := m.Lookup("apple")
	assert.Equal(t, types.Int(20), apple.Nominal)
}

func TestLoadReplacesCollection(t *testing.T) {
	m := loadedModel(t)

	m.Load([]types.Item{{Name: "Zucchini"}})

	assert.Equal(t, 1, m.Len())
	_, ok := m.Lookup("apple")
	assert.False(t, ok)
	row, ok := m.Row(0)
	require.True(t, ok)
	assert.Equal(t, "Zucchini", row.Name)

	m.Clear()
	assert.Zero(t, m.Len())
	_, ok = m.Row(0)
	assert.False(t, ok)
}

func TestCellText(t *testing.T) {
	items := sampleItems()

	assert.Equal(t, "apple", CellText(items[0], ColumnName))
	assert.Equal(t, "20", CellText(items[0], types.FieldNominal))
	assert.Equal(t, "", CellText(items[0], types.FieldLifetime))
	assert.Equal(t, "Military", CellText(items[1], ColumnUsages))
	assert.Equal(t, "-1", CellText(items[1], types.FieldQuantMax))
	assert.Equal(t, "", CellText(items[1], "unknown"))
}

func TestColumns(t *testing.T) {
	keys := make([]string, 0)
	for _, c := range Columns() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"name", "usages", "nominal", "lifetime", "restock", "min", "quantmin", "quantmax", "cost"}, keys)

	quantmin, ok := ColumnByKey(types.FieldQuantMin)
	require.True(t, ok)
	assert.Equal(t, QuantityGroup, quantmin.Group)
	assert.True(t, quantmin.Editable)

	name, _ := ColumnByKey(ColumnName)
	assert.False(t, name.Editable)
}
