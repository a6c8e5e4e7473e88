package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowWidthRaggedRows(t *testing.T) {
	var b Base
	rows := [][]Value{
		{String("a")},
		{String("b"), Int(1), Int(2)},
		{String("c"), Int(3)},
	}
	minW, maxW := b.RowWidth(rows)
	assert.Equal(t, 1, minW)
	assert.Equal(t, 3, maxW)
}

func TestRowWidthHeadersCount(t *testing.T) {
	var b Base
	b.Headers([]Value{String("A"), String("B"), String("C"), String("D")})
	minW, maxW := b.RowWidth([][]Value{{Int(1), Int(2)}})
	assert.Equal(t, 2, minW)
	assert.Equal(t, 4, maxW)
}

func TestRowWidthEmpty(t *testing.T) {
	var b Base
	minW, maxW := b.RowWidth(nil)
	assert.Equal(t, 0, minW)
	assert.Equal(t, 0, maxW)
}

func TestRowWidthNoRowsWithHeaders(t *testing.T) {
	var b Base
	b.Headers([]Value{String("A"), String("B")})
	minW, maxW := b.RowWidth(nil)
	assert.Equal(t, 2, minW)
	assert.Equal(t, 2, maxW)
}

func TestFindAlignmentsFirstNonHoleWins(t *testing.T) {
	var b Base
	rows := [][]Value{
		{Hole, String("a")},
		{Int(5), Hole},
	}
	align := b.FindAlignments(rows, 2)
	require.Len(t, align, 2)
	assert.Equal(t, AlignRight, align[0])
	assert.Equal(t, AlignLeft, align[1])
}

func TestFindAlignmentsAllHolesDefaultsLeft(t *testing.T) {
	var b Base
	rows := [][]Value{
		{Hole, Int(1)},
		{Hole, Int(2)},
	}
	align := b.FindAlignments(rows, 2)
	assert.Equal(t, []Alignment{AlignLeft, AlignRight}, align)
}

func TestFindAlignmentsExplicitWins(t *testing.T) {
	var b Base
	b.Alignments([]Alignment{AlignCenter, AlignNone})
	rows := [][]Value{{String("s"), Int(9)}}
	align := b.FindAlignments(rows, 2)
	assert.Equal(t, []Alignment{AlignCenter, AlignRight}, align)
}

func TestFindAlignmentsDoesNotMutateHints(t *testing.T) {
	var b Base
	hints := []Alignment{AlignNone, AlignNone}
	b.Alignments(hints)
	b.FindAlignments([][]Value{{String("s"), Int(9)}}, 2)
	assert.Equal(t, []Alignment{AlignNone, AlignNone}, hints)
}

func TestFindAlignmentsDeterministic(t *testing.T) {
	var b Base
	rows := [][]Value{
		{Hole, String("a"), Int(1)},
		{Bool(true), Hole, String("z")},
	}
	first := b.FindAlignments(rows, 3)
	second := b.FindAlignments(rows, 3)
	assert.Equal(t, first, second)
}

func TestFindAlignmentsNullAlignsRight(t *testing.T) {
	var b Base
	align := b.FindAlignments([][]Value{{Null()}}, 1)
	assert.Equal(t, []Alignment{AlignRight}, align)
}

func TestPadRowsWidthInvariant(t *testing.T) {
	var b Base
	b.Headers([]Value{String("A"), String("B"), String("C")})
	rows := [][]Value{
		{String("x")},
		{String("y"), Int(1)},
	}
	_, width := b.RowWidth(rows)
	padded := b.PadRows(rows, width)
	headers := b.PadHeaders(width)
	require.Len(t, headers, width)
	for _, row := range padded {
		assert.Len(t, row, width)
	}
	// Originals untouched.
	assert.Len(t, rows[0], 1)
	assert.Len(t, rows[1], 2)
	assert.True(t, padded[0][2].IsHole())
}

func TestPadHeadersAbsent(t *testing.T) {
	var b Base
	assert.Nil(t, b.PadHeaders(3))
	b.Headers([]Value{})
	assert.Nil(t, b.PadHeaders(3))
}

func TestPadHeadersHolesBecomeEmptyLabels(t *testing.T) {
	var b Base
	stored := []Value{String("A"), Hole}
	b.Headers(stored)
	headers := b.PadHeaders(3)
	require.Len(t, headers, 3)
	assert.Equal(t, String("A"), headers[0])
	assert.Equal(t, String(""), headers[1])
	assert.Equal(t, String(""), headers[2])
	// Stored headers keep their hole.
	assert.True(t, stored[1].IsHole())
}

func TestPadHeadersWideEnoughReturnedAsIs(t *testing.T) {
	var b Base
	stored := []Value{String("A"), String("B")}
	b.Headers(stored)
	headers := b.PadHeaders(2)
	require.Len(t, headers, 2)
	assert.Equal(t, String("A"), headers[0])
	assert.Equal(t, String("B"), headers[1])
}
