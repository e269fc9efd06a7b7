package speech

import "golang.org/x/text/language"

// StaticEngine answers SetLanguage from a fixed set of supported base
// languages. The demo uses it in place of a platform engine.
type StaticEngine struct {
	Supported []language.Tag
	Selected  language.Tag
}

func (e *StaticEngine) SetLanguage(tag language.Tag) LanguageResult {
	if len(e.Supported) == 0 {
		return LangMissingData
	}
	matcher := language.NewMatcher(e.Supported)
	_, _, confidence := matcher.Match(tag)
	switch confidence {
	case language.Exact:
		e.Selected = tag
		return LangCountryAvailable
	case language.High:
		e.Selected = tag
		return LangAvailable
	default:
		return LangNotSupported
	}
}
