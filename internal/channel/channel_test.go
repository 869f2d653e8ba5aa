package channel

import (
	"testing"

	"callcenter-gin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestChannelCapabilities(t *testing.T) {
	tests := []struct {
		channel         Channel
		supportsCall    bool
		supportsMessage bool
	}{
		{NewMobileChannel(), true, true},
		{NewWhatsAppChannel(), true, true},
		{NewFacebookChannel(), false, true},
		{NewLinkedInChannel(), false, true},
		{NewOtherChannel(), false, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.supportsCall, tt.channel.SupportsCall(), "channel %s", tt.channel.Type())
		assert.Equal(t, tt.supportsMessage, tt.channel.SupportsMessage(), "channel %s", tt.channel.Type())
	}
}

func TestChannelResolve(t *testing.T) {
	customer := &models.Customer{
		Code:   "CUS-0001",
		Name:   "Khách Test",
		Mobile: strPtr("+84900000000"),
		Links: models.ContactLinks{
			Facebook: "https://facebook.com/test",
		},
	}

	target, ok := NewMobileChannel().Resolve(customer)
	require.True(t, ok)
	assert.Equal(t, "+84900000000", target)

	target, ok = NewFacebookChannel().Resolve(customer)
	require.True(t, ok)
	assert.Equal(t, "https://facebook.com/test", target)

	// Khách không có LinkedIn
	_, ok = NewLinkedInChannel().Resolve(customer)
	assert.False(t, ok)

	// Khách không có số di động
	customer.Mobile = nil
	_, ok = NewMobileChannel().Resolve(customer)
	assert.False(t, ok)
	_, ok = NewWhatsAppChannel().Resolve(customer)
	assert.False(t, ok)
}

func TestDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, 5, r.Count())
	for _, typ := range []string{"mobile", "whatsapp", "facebook", "linkedin", "other"} {
		assert.True(t, r.Has(typ), "channel %s", typ)
		ch, err := r.Get(typ)
		require.NoError(t, err)
		assert.Equal(t, typ, ch.Type())
	}

	_, err := r.Get("zalo")
	assert.Error(t, err)
}

func TestContactChannelFor(t *testing.T) {
	// call và sms đi qua số di động
	assert.Equal(t, "mobile", ContactChannelFor(models.ChannelCall))
	assert.Equal(t, "mobile", ContactChannelFor(models.ChannelSMS))
	assert.Equal(t, "whatsapp", ContactChannelFor(models.ChannelWhatsApp))
}
