package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptdeck/internal/api"
)

func TestOrZero(t *testing.T) {
	assert.NotNil(t, OrZero(nil))
	assert.Zero(t, OrZero(nil).BonusBalance)

	p := &api.Profile{BonusBalance: 7}
	assert.Same(t, p, OrZero(p))
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 0, SuccessRate(&api.Profile{}))
	assert.Equal(t, 81, SuccessRate(&api.Profile{TotalGenerations: 98, DoneCount: 79}))
	assert.Equal(t, 100, SuccessRate(&api.Profile{TotalGenerations: 5, DoneCount: 5}))
	assert.Equal(t, "Успешных: 79 из 98", SuccessHint(&api.Profile{TotalGenerations: 98, DoneCount: 79}))
}

func TestReferralLink(t *testing.T) {
	assert.Equal(t, "", ReferralLink("iiavabot", &api.Profile{}))
	assert.Equal(t,
		"https://t.me/iiavabot?start=ref_abc123",
		ReferralLink("iiavabot", &api.Profile{RefCode: "abc123"}))
}

func TestFormatRegisteredAt(t *testing.T) {
	assert.Equal(t, "3 ноября 2025 г.", FormatRegisteredAt("2025-11-03"))
	assert.Equal(t, "1 января 2026 г.", FormatRegisteredAt("2026-01-01T10:30:00Z"))
	assert.Equal(t, "когда-то", FormatRegisteredAt("когда-то"))
	assert.Equal(t, "", FormatRegisteredAt(""))
}
