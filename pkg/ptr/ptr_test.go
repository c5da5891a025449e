package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrValue(t *testing.T) {
	p := Ptr(int64(7))
	assert.Equal(t, int64(7), Value(p))

	var missing *int64
	assert.Zero(t, Value(missing))
	assert.Equal(t, "", Value[string](nil))
}
