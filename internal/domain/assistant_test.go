package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply_OverflowKeyword(t *testing.T) {
	reply := Reply("What about overflow tanks?")

	assert.Contains(t, reply, "divert extra water")
}

func TestReply_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Reply("OVERFLOW"), Reply("overflow"))
	assert.Contains(t, Reply("Tell me about SOIL"), "recharge pit")
}

func TestReply_RainBeforeOverflow(t *testing.T) {
	// Both keywords present: the rule table checks "rain" first.
	reply := Reply("does rain cause overflow?")

	assert.Contains(t, reply, "recharges groundwater")
}

func TestReply_RainSubstring(t *testing.T) {
	// "rainwater" contains "rain"; substring matching is intended.
	assert.Contains(t, Reply("rainwater harvesting?"), "recharges groundwater")
}

func TestReply_Default(t *testing.T) {
	assert.Equal(t, DefaultReply, Reply("hello there"))
	assert.Equal(t, DefaultReply, Reply(""))
}
