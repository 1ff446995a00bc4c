package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Render(t *testing.T) {
	tbl := newTable("CODE", "AMOUNT", "NAME").alignRight(1)
	tbl.add("4010", "1000.00", "Tuition Fees")
	tbl.add("5010", "5.00", "Salaries")

	var buf bytes.Buffer
	require.NoError(t, tbl.render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "CODE   AMOUNT  NAME", lines[0])
	assert.Equal(t, "4010  1000.00  Tuition Fees", lines[1])
	assert.Equal(t, "5010     5.00  Salaries", lines[2])
}

func TestTable_WideRunes(t *testing.T) {
	tbl := newTable("DESC", "X")
	tbl.add("食堂 meals", "1")
	tbl.add("a", "2")

	var buf bytes.Buffer
	require.NoError(t, tbl.render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// "食堂 meals" is 10 cells wide.
	assert.Equal(t, "a           2", lines[2])
}
