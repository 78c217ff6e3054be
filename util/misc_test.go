package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitString(test *testing.T) {
	assert.Equal(test, []string{""}, SplitString("", 4))
	assert.Equal(test, []string{"abcd", "ef"}, SplitString("abcdef", 4))
	assert.Equal(test, []string{"ab"}, SplitString("ab", 4))
	assert.Equal(test, []string{"äö", "ü"}, SplitString("äöü", 2))
}

func TestCharacterClasses(test *testing.T) {
	assert.True(test, IsWhitespace('\f'))
	assert.False(test, IsWhitespace('x'))
	assert.True(test, IsUppercaseLetter('Q'))
	assert.False(test, IsUppercaseLetter('q'))
	assert.True(test, IsDigit('7'))
}

func TestBaseFileName(test *testing.T) {
	assert.Equal(test, "part", BaseFileName("/tmp/models/part.stp"))
	assert.Equal(test, ".hidden", BaseFileName(".hidden"))
}

func TestConfigHelpers(test *testing.T) {
	assert.Equal(test, 3, AsInt(float64(3)))
	assert.Equal(test, "", AsString(3))
	assert.True(test, AsBool("yes"))
	assert.False(test, AsBool(nil))
	assert.Nil(test, AsStringArray([]interface{}{"a", 1}))
	assert.Equal(test, []string{"a", "b"}, AsStringArray([]interface{}{"a", "b"}))
}
