package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	a := [2]float64{1, 2}
	b := [2]float64{3, 4}

	assert.Equal(t, Name(a), Name(a), "same key gives same name")
	assert.Equal(t, Name(a), Name([2]float64{1, 2}), "equal keys give same name")
	assert.NotEmpty(t, Name(b))

	var nilPointer *int
	assert.Equal(t, "Ø", Name(nilPointer))
	assert.Equal(t, "Ø", Name(nil))
}
