package rtf

import (
	"golang.org/x/text/language"

	"github.com/xavi-mat/simplertf/core/errors"
)

// lcidTags pairs BCP 47 tags with the Windows language codes used by
// the \lang and \deflang control words.
var lcidTags = []struct {
	tag  language.Tag
	lcid int
}{
	{language.MustParse("ca"), 1027},    // Catalan
	{language.MustParse("he"), 1037},    // Hebrew
	{language.MustParse("it"), 1040},    // Italian
	{language.MustParse("en-US"), 1033}, // English (US)
	{language.MustParse("en-GB"), 2057}, // English (UK)
	{language.MustParse("es"), 1034},    // Spanish
	{language.MustParse("fr"), 1036},    // French
	{language.MustParse("de"), 1031},    // German
	{language.MustParse("el"), 1032},    // Greek
	{language.MustParse("pt"), 2070},    // Portuguese
	{language.MustParse("ar"), 1025},    // Arabic
	{language.MustParse("ru"), 1049},    // Russian
}

var lcidMatcher language.Matcher

func init() {
	tags := make([]language.Tag, len(lcidTags))
	for i, e := range lcidTags {
		tags[i] = e.tag
	}
	lcidMatcher = language.NewMatcher(tags)
}

// LCID maps a BCP 47 language tag to the Windows language code used by
// style language attributes. Unparseable tags are a ParseError; tags
// with no usable match are a NotFoundError.
func LCID(tag string) (int, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return 0, &errors.ParseError{Input: tag, Message: "invalid language tag", Err: err}
	}
	_, idx, conf := lcidMatcher.Match(t)
	if conf == language.No {
		return 0, errors.NewNotFound("language code", tag)
	}
	return lcidTags[idx].lcid, nil
}
