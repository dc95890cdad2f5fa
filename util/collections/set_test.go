package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 2)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(1))
	assert.False(t, set.Add(2))

	assert.True(t, set.Add(3))
	assert.False(t, set.Add(3))
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(42))
}

func TestSetOfArrays(t *testing.T) {
	set := NewSet[[2]int]()
	assert.True(t, set.Add([2]int{1, 2}))
	assert.False(t, set.Add([2]int{1, 2}))
	assert.True(t, set.Add([2]int{2, 1}))
}
