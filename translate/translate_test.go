package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("cell 3 out of bounds", From("cell %d out of bounds", 3))
	assert.Equal("limit 1,000,000", From("limit %d", 1000000))
}

func TestSetLanguage_Invalid(t *testing.T) {
	assert := assert.New(t)

	assert.Error(SetLanguage("not a language tag!"))
	assert.NoError(SetLanguage("en-US"))
}
