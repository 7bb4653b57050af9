package services

import (
	"context"
	"testing"

	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestAdviseWithoutCredentials(t *testing.T) {
	cfg := &structs.Config{
		Assistant: &structs.AssistantConfig{Model: "gemini-2.5-flash"},
	}
	as := NewAssistantService(gecho.NewDefaultLogger(), cfg)

	// No API key means the canned unavailable reply, not an error.
	reply := as.Advise(context.Background(), "كم متر أحتاج لباقة من 50 وردة؟")
	assert.Equal(t, msgAssistantUnavailable, reply)
}
