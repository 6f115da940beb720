package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "Café", sanitizeUTF8("Café"))
	assert.Equal(t, "Food", sanitizeUTF8("Fo\xffod"))
	assert.Equal(t, "", sanitizeUTF8("\xc3"))
}

func TestSanitizeOptional(t *testing.T) {
	assert.Nil(t, sanitizeOptional(nil))

	in := "re\xfefund"
	out := sanitizeOptional(&in)
	if assert.NotNil(t, out) {
		assert.Equal(t, "refund", *out)
	}
}
