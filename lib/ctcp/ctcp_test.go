package ircctcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "\x01VERSION\x01", Quote(VERSION))
	assert.Equal(t, "\x01ACTION waves\x01", Quote(ACTION, "waves"))
	assert.Equal(t, "\x01DCC CHAT chat 2130706433 5000\x01", Quote(DCC, "CHAT", "chat", "2130706433", "5000"))
}

func TestIsQuoted(t *testing.T) {
	assert.True(t, IsQuoted(Quote(PING, "12345")))
	assert.True(t, IsQuoted("\x01\x01"))
	assert.False(t, IsQuoted("\x01"))
	assert.False(t, IsQuoted("\x01PING"))
	assert.False(t, IsQuoted("hello"))
	assert.False(t, IsQuoted(""))
}
