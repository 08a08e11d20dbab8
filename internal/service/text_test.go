package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanModelText(t *testing.T) {
	assert.Equal(t, "Цена ok", cleanModelText("  Цена \xff\xfeok \n"))
	assert.Equal(t, "a\nb", cleanModelText("a\r\nb"))
	assert.Equal(t, "", cleanModelText(" \t\n"))
}
