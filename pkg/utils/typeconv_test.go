package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresent(t *testing.T) {
	assert.False(t, Present(nil))
	assert.False(t, Present(""))
	assert.False(t, Present(int64(0)))
	assert.False(t, Present(0.0))
	assert.False(t, Present(false))

	assert.True(t, Present("Automatic"))
	assert.True(t, Present(int64(2022)))
	assert.True(t, Present(1500.0))
	assert.True(t, Present(true))
	assert.True(t, Present([]interface{}{}))
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 5, IntOr(int64(5), 4))
	assert.Equal(t, 5, IntOr(5.0, 4))
	assert.Equal(t, 5, IntOr("5", 4))
	assert.Equal(t, 4, IntOr(nil, 4))
	assert.Equal(t, 4, IntOr("five", 4))
	assert.Equal(t, 4, IntOr(map[string]interface{}{}, 4))
}

func TestFloatOr(t *testing.T) {
	assert.Equal(t, 4.5, FloatOr(4.5, 5.0))
	assert.Equal(t, 4.5, FloatOr("4.5", 5.0))
	assert.Equal(t, 2022.0, FloatOr(int64(2022), 5.0))
	assert.Equal(t, 5.0, FloatOr(nil, 5.0))
	assert.Equal(t, 5.0, FloatOr("n/a", 5.0))
}

func TestBoolOr(t *testing.T) {
	assert.True(t, BoolOr(true, false))
	assert.False(t, BoolOr(false, true))
	assert.True(t, BoolOr(nil, true))
	assert.False(t, BoolOr("yes", false))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(nil))
	assert.Nil(t, StringPtr(""))
	assert.Nil(t, StringPtr(int64(3)))

	p := StringPtr("V8")
	if assert.NotNil(t, p) {
		assert.Equal(t, "V8", *p)
	}
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{}, StringList(nil))
	assert.Equal(t, []string{}, StringList("not-a-list"))
	assert.Equal(t,
		[]string{"a.jpg", "b.jpg"},
		StringList([]interface{}{"a.jpg", int64(2), "b.jpg"}))
}
