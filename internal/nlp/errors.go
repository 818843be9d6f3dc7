package nlp

import "errors"

// ErrUnknownLanguage indicates no stopword list is bundled for a language.
var ErrUnknownLanguage = errors.New("unknown stopword language")

// ErrNoStopwords indicates a stopword list without any word.
var ErrNoStopwords = errors.New("stopword list is empty")
