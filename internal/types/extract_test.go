package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>
<types>
    <type name="AKM">
        <nominal>5</nominal>
        <lifetime>28800</lifetime>
        <restock>3600</restock>
        <min>3</min>
        <quantmin>-1</quantmin>
        <quantmax>-1</quantmax>
        <cost>100</cost>
        <flags count_in_cargo="0" count_in_hoarder="0" count_in_map="1" count_in_player="0" crafted="0" deloot="0"/>
        <category name="weapons"/>
        <usage name="Military"/>
        <usage name="Police"/>
    </type>
    <type name="Apple">
        <nominal>20</nominal>
        <restock>0</restock>
        <category name="food"/>
    </type>
    <type name="Zucchini">
        <nominal> 12 </nominal>
    </type>
</types>`

func TestExtractProducesOneRecordPerTypeInOrder(t *testing.T) {
	items, err := Extract(strings.NewReader(sampleTypes))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "AKM", items[0].Name)
	assert.Equal(t, "Apple", items[1].Name)
	assert.Equal(t, "Zucchini", items[2].Name)
}

func TestExtractMapsAllFields(t *testing.T) {
	items, err := Extract(strings.NewReader(sampleTypes))
	require.NoError(t, err)

	akm := items[0]
	assert.Equal(t, Int(5), akm.Nominal)
	assert.Equal(t, Int(28800), akm.Lifetime)
	assert.Equal(t, Int(3600), akm.Restock)
	assert.Equal(t, Int(3), akm.Min)
	assert.Equal(t, Int(-1), akm.QuantMin)
	assert.Equal(t, Int(-1), akm.QuantMax)
	assert.Equal(t, Int(100), akm.Cost)
	require.NotNil(t, akm.Category)
	assert.Equal(t, "weapons", *akm.Category)
	assert.Equal(t, []string{"Military", "Police"}, akm.Usages)

	assert.Equal(t, Int(12), items[2].Nominal)
}

func TestExtractLeavesMissingFieldsAbsent(t *testing.T) {
	items, err := Extract(strings.NewReader(sampleTypes))
	require.NoError(t, err)

	apple := items[1]
	assert.Equal(t, Int(20), apple.Nominal)
	assert.Equal(t, Int(0), apple.Restock)
	assert.Nil(t, apple.Lifetime)
	assert.Nil(t, apple.Min)
	assert.Nil(t, apple.QuantMin)
	assert.Nil(t, apple.QuantMax)
	assert.Nil(t, apple.Cost)
	assert.Empty(t, apple.Usages)

	zucchini := items[2]
	assert.Nil(t, zucchini.Category)
}

func TestExtractSingleTypeDocument(t *testing.T) {
	items, err := Extract(strings.NewReader(`<type name="apple"><nominal>20</nominal></type>`))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, Item{Name: "apple", Nominal: Int(20)}, items[0])
}

func TestExtractCostIndependentOfQuantmax(t *testing.T) {
	doc := `<types>
		<type name="a"><quantmax>50</quantmax></type>
		<type name="b"><cost>100</cost></type>
	</types>`

	items, err := Extract(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Nil(t, items[0].Cost)
	assert.Equal(t, Int(50), items[0].QuantMax)
	assert.Equal(t, Int(100), items[1].Cost)
	assert.Nil(t, items[1].QuantMax)
}

func TestExtractEmptyRoot(t *testing.T) {
	items, err := Extract(strings.NewReader(`<types></types>`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty input", "", ErrMalformedDocument},
		{"unclosed root", `<types><type name="a">`, ErrMalformedDocument},
		{"mismatched tags", `<types><type name="a"></types>`, ErrMalformedDocument},
		{"missing name", `<types><type><nominal>1</nominal></type></types>`, ErrMissingName},
		{"blank name", `<types><type name=" "/></types>`, ErrMissingName},
		{"duplicate name", `<types><type name="a"/><type name="a"/></types>`, ErrDuplicateName},
		{"non numeric", `<types><type name="a"><nominal>lots</nominal></type></types>`, ErrInvalidField},
		{"empty numeric", `<types><type name="a"><lifetime/></type></types>`, ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Extract(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, items)
		})
	}
}

func TestExtractCategoryWithoutName(t *testing.T) {
	doc := `<types>
    <type name="a"><category/><usage/><usage name="Farm"/></type>
    <type name="b"><category name=""/></type>
</types>`

	items, err := Extract(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Nil(t, items[0].Category)
	assert.Equal(t, []string{"Farm"}, items[0].Usages)

	require.NotNil(t, items[1].Category)
	assert.Equal(t, "", *items[1].Category)
}

func TestExtractDeclaredCharset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"windows-1252\"?>\n" +
		"<types><type name=\"Caf\xe9Sign\"><nominal>2</nominal><category name=\"tools\"/></type></types>"

	items, err := Extract(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CaféSign", items[0].Name)
	assert.Equal(t, Int(2), items[0].Nominal)
}
