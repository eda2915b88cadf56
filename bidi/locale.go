package bidi

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// A higher-level protocol may set the paragraph direction (UAX#9, HL1).
// A common source of information for this is the user's locale.

// ISO 15924 codes of scripts written from right to left.
var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Armi": true, "Avst": true, "Chrs": true,
	"Cprt": true, "Elym": true, "Hatr": true, "Hebr": true, "Hung": true,
	"Khar": true, "Lydi": true, "Mand": true, "Mani": true, "Mend": true,
	"Merc": true, "Mero": true, "Narb": true, "Nbat": true, "Nkoo": true,
	"Orkh": true, "Ougr": true, "Palm": true, "Phli": true, "Phlp": true,
	"Phnx": true, "Prti": true, "Rohg": true, "Samr": true, "Sarb": true,
	"Sogd": true, "Sogo": true, "Syrc": true, "Thaa": true, "Yezi": true,
}

// LocaleDirection returns the writing direction of the script most likely
// used for a BCP 47 locale, e.g. RightToLeft for "he-IL" or "fa".
// Unknown locales are considered left-to-right.
func LocaleDirection(locale string) Direction {
	tag, err := language.Parse(locale)
	if err != nil {
		tracer().Debugf("cannot parse locale %q: %v", locale, err)
		return LeftToRight
	}
	script, confidence := tag.Script()
	if confidence == language.No {
		return LeftToRight
	}
	if rtlScripts[script.String()] {
		return RightToLeft
	}
	return LeftToRight
}

// EnvironmentDirection returns the writing direction for the user's locale,
// as found in the environment. If no locale is set, LeftToRight is returned.
func EnvironmentDirection() Direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("no user locale detected: %v", err)
		return LeftToRight
	}
	tracer().Infof("detected user locale %v", userLocale)
	return LocaleDirection(userLocale)
}
