package ui

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
)

func TestFormatDeadline(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		locale   string
		want     string
	}{
		{"us english", "2025-01-05", "en-US", "Jan 5, 2025"},
		{"posix us english", "2025-12-31", "en_US.UTF-8", "Dec 31, 2025"},
		{"british english", "2025-01-05", "en_GB.UTF-8", "5 Jan 2025"},
		{"C locale", "2025-01-05", "C", "Jan 5, 2025"},
		{"unknown locale falls back", "2025-01-05", "not a locale!!", "Jan 5, 2025"},
		{"unsupported language falls back", "2025-01-05", "ja_JP.UTF-8", "Jan 5, 2025"},
		{"rfc3339 timestamp", "2025-01-05T10:00:00Z", "en-US", "Jan 5, 2025"},
		{"garbage", "next tuesday", "en-US", InvalidDate},
		{"empty", "", "en-US", InvalidDate},
		{"impossible date", "2025-02-30", "en-US", InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDeadline(tt.deadline, ParseLocale(tt.locale)))
		})
	}
}

func TestFormatDeadline_Translated(t *testing.T) {
	march9 := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{"de_DE.UTF-8", monday.Format(march9, "2. Jan 2006", monday.LocaleDeDE)},
		{"fr-FR", monday.Format(march9, "2 Jan 2006", monday.LocaleFrFR)},
		{"es", monday.Format(march9, "2 Jan 2006", monday.LocaleEsES)},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got := FormatDeadline("2025-03-09", ParseLocale(tt.locale))
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "Mar 9, 2025", got)
			assert.Contains(t, got, "2025")
		})
	}
}

func TestLocaleFromEnv(t *testing.T) {
	jan5 := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, monday.Format(jan5, "2. Jan 2006", monday.LocaleDeDE), FormatDeadline("2025-01-05", LocaleFromEnv()))

	t.Setenv("LC_ALL", "en_GB.UTF-8")
	assert.Equal(t, "5 Jan 2025", FormatDeadline("2025-01-05", LocaleFromEnv()))
}
