package format

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	subPatternToken = iota
	quotedBlockToken
)

var (
	subPatternMatcher  = parsly.NewToken(subPatternToken, "sub pattern", matcher.NewTerminator(';', true))
	quotedBlockMatcher = parsly.NewToken(quotedBlockToken, `'...'`, matcher.NewBlock('\'', '\'', '\\'))
)
