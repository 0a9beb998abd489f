// Package profile derives the presentation values of the viewer's account
// summary: success rate, referral link, and the fixed ru-RU date format.
package profile

import (
	"fmt"
	"math"
	"time"

	"promptdeck/internal/api"
)

// Zero is the placeholder shown to unauthenticated viewers. Presentation
// default only; never persisted or sent upstream.
func Zero() *api.Profile {
	return &api.Profile{}
}

// OrZero substitutes the placeholder when the gateway returned no profile.
func OrZero(p *api.Profile) *api.Profile {
	if p == nil {
		return Zero()
	}
	return p
}

// SuccessRate returns the rounded percentage of finished generations, zero
// when there were none.
func SuccessRate(p *api.Profile) int {
	if p.TotalGenerations == 0 {
		return 0
	}
	return int(math.Round(float64(p.DoneCount) / float64(p.TotalGenerations) * 100))
}

// SuccessHint renders the "Успешных: X из Y" line under the rate.
func SuccessHint(p *api.Profile) string {
	return fmt.Sprintf("Успешных: %d из %d", p.DoneCount, p.TotalGenerations)
}

// ReferralLink builds the shareable link, or "" when the viewer has no
// referral code (shown only to authenticated viewers).
func ReferralLink(botUsername string, p *api.Profile) string {
	if p.RefCode == "" {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s?start=ref_%s", botUsername, p.RefCode)
}

var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatRegisteredAt renders the registration timestamp as a long ru-RU date
// ("3 ноября 2025 г."). Unparseable input is passed through unchanged.
func FormatRegisteredAt(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return fmt.Sprintf("%d %s %d г.", t.Day(), ruMonths[t.Month()-1], t.Year())
		}
	}
	return raw
}
