package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueZeroIsHole(t *testing.T) {
	var v Value
	assert.True(t, v.IsHole())
	assert.Equal(t, "", v.String())
}

func TestValueRendering(t *testing.T) {
	assert.Equal(t, "alpha", String("alpha").String())
	assert.Equal(t, "", String("").String())
	assert.Equal(t, "2000", Int(2000).String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "", Hole.String())
}

func TestHoleDistinctFromEmptyString(t *testing.T) {
	assert.True(t, Hole.IsHole())
	assert.False(t, String("").IsHole())
}

func TestFromConversions(t *testing.T) {
	assert.Equal(t, KindNull, From(nil).Kind())
	assert.Equal(t, KindString, From("x").Kind())
	assert.Equal(t, KindBool, From(false).Kind())
	assert.Equal(t, KindNumber, From(3.14).Kind())
	assert.Equal(t, KindNumber, From(42).Kind())
	assert.Equal(t, KindNumber, From(json.Number("10")).Kind())
	// A Value passes through unchanged.
	assert.Equal(t, Hole, From(Hole))
}

func TestRowHelper(t *testing.T) {
	row := Row("a", 1, nil)
	assert.Len(t, row, 3)
	assert.Equal(t, KindString, row[0].Kind())
	assert.Equal(t, KindNumber, row[1].Kind())
	assert.Equal(t, KindNull, row[2].Kind())
}
