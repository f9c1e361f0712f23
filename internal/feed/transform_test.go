package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformMessageLineBreaks(t *testing.T) {
	assembler := NewAssembler(newFakeRecords())

	got := assembler.TransformMessage(`line one\nline two`)
	assert.Equal(t, "line one<br>line two", got)
}

func TestTransformMessageLinksKnownZID(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")
	assembler := NewAssembler(records)

	got := assembler.TransformMessage(`Hello \n z1111111`)
	assert.Equal(t, `Hello <br> <a href="/z1111111/index">Alice Ao</a>`, got)
}

func TestTransformMessageLeavesUnknownZID(t *testing.T) {
	assembler := NewAssembler(newFakeRecords())

	got := assembler.TransformMessage("ping z9999999")
	assert.Equal(t, "ping z9999999", got)
}

func TestTransformMessageRepeatedZID(t *testing.T) {
	records := newFakeRecords()
	records.addStudent("z1111111", "Alice Ao")
	assembler := NewAssembler(records)

	got := assembler.TransformMessage("z1111111 and z1111111")
	want := `<a href="/z1111111/index">Alice Ao</a> and <a href="/z1111111/index">Alice Ao</a>`
	assert.Equal(t, want, got)
}

func TestTransformTime(t *testing.T) {
	assert.Equal(t, "2016-05-13 04:35:53", TransformTime("2016-05-13T04:35:53+0000"))
	assert.Equal(t, "2016-05-13 04:35:53", TransformTime("2016-05-13T04:35:53-0500"))
	// No offset, nothing to strip.
	assert.Equal(t, "2016-05-13 04:35:53", TransformTime("2016-05-13T04:35:53"))
}
