package arabshape

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// Context represents information about the rendering environment, as far as
// it influences the order of shaped output.
type Context struct {
	Script language.Script // ISO 15924 script identifier
	Locale string          // ISO 639/3166 locale string
}

var rtlMatch = language.NewMatcher([]language.Tag{
	language.English, // The first language is used as fallback.
	language.Arabic,
	language.Persian,
	language.Urdu,
	language.Hebrew,
})

// ContextFromEnvironment detects the user locale. If detection fails, a
// locale of "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf("%v", err)
		userLocale = "en-US"
		tracer().Infof("arabshape sets default user locale %v", userLocale)
	} else {
		tracer().Infof("arabshape detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	return &Context{
		Script: script,
		Locale: userLocale,
	}
}

// Direction returns the output order suitable for ctx: environments set up
// for a right-to-left language are assumed to reorder text on their own and
// get logical order, all others get visual order.
func (ctx *Context) Direction() bidi.Direction {
	if ctx == nil {
		return bidi.RightToLeft
	}
	switch ctx.Script.String() {
	case "Arab", "Hebr", "Syrc", "Thaa", "Nkoo":
		return bidi.LeftToRight
	}
	_, index, confidence := rtlMatch.Match(language.Make(ctx.Locale))
	if confidence >= language.High && index > 0 {
		return bidi.LeftToRight
	}
	return bidi.RightToLeft
}
