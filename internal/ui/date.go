package ui

import (
	"os"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// InvalidDate is shown for deadlines that do not parse.
const InvalidDate = "Invalid Date"

const isoDate = "2006-01-02"

// Index i of supportedLocales pairs with dateFormats[i].
var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

type dateFormat struct {
	locale monday.Locale
	layout string
}

var dateFormats = []dateFormat{
	{monday.LocaleEnUS, "Jan 2, 2006"},
	{monday.LocaleEnGB, "2 Jan 2006"},
	{monday.LocaleDeDE, "2. Jan 2006"},
	{monday.LocaleFrFR, "2 Jan 2006"},
	{monday.LocaleEsES, "2 Jan 2006"},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Locale selects the date conventions used for deadline badges.
type Locale struct {
	style int
}

// ParseLocale accepts BCP 47 tags ("en-GB") and POSIX locale names
// ("de_DE.UTF-8"). Anything unrecognized falls back to en-US.
func ParseLocale(s string) Locale {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return Locale{}
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return Locale{style: idx}
}

// LocaleFromEnv reads LC_ALL, LC_TIME and LANG, in that order.
func LocaleFromEnv() Locale {
	for _, k := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(k); v != "" {
			return ParseLocale(v)
		}
	}
	return ParseLocale("")
}

// FormatDeadline renders an ISO date as short month, numeric day and year
// ("Jan 5, 2025" in en-US). Unparsable input yields InvalidDate.
func FormatDeadline(s string, loc Locale) string {
	d, err := ParseDeadline(s)
	if err != nil {
		return InvalidDate
	}
	f := dateFormats[loc.style]
	return monday.Format(d, f.layout, f.locale)
}

// ParseDeadline accepts a bare ISO date or a full RFC 3339 timestamp.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(isoDate, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
