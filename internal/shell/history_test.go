package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Navigation(t *testing.T) {
	h := NewHistory(0)
	h.Add("one")
	h.Add("two")
	h.Add("three")

	line, ok := h.Prev()
	assert.True(t, ok)
	assert.Equal(t, "three", line)

	line, _ = h.Prev()
	assert.Equal(t, "two", line)
	line, _ = h.Prev()
	assert.Equal(t, "one", line)

	_, ok = h.Prev()
	assert.False(t, ok, "nothing older than the first entry")

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "two", line)
	line, _ = h.Next()
	assert.Equal(t, "three", line)

	line, ok = h.Next()
	assert.True(t, ok, "stepping past the newest entry clears the line")
	assert.Equal(t, "", line)

	_, ok = h.Next()
	assert.False(t, ok)
}

func TestHistory_AddResetsCursor(t *testing.T) {
	h := NewHistory(0)
	h.Add("one")
	h.Add("two")
	h.Prev()
	h.Prev()

	h.Add("three")
	line, _ := h.Prev()
	assert.Equal(t, "three", line)
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(10)

	_, ok := h.Prev()
	assert.False(t, ok)
	_, ok = h.Next()
	assert.False(t, ok)
	assert.Empty(t, h.Entries())
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")

	assert.Equal(t, []string{"b", "c"}, h.Entries())
	assert.Equal(t, 2, h.Len())
}
