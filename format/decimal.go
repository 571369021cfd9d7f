package format

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/viant/parsly"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Pattern represents a decimal format pattern, e.g. #,##0.00 or $#,##0.00;($#,##0.00).
type Pattern struct {
	Prefix         string
	Suffix         string
	NegativePrefix string
	NegativeSuffix string
	//MinInteger is the count of mandatory integer digits
	MinInteger  int
	MinFraction int
	MaxFraction int
	//Grouping is the primary grouping size, zero when the pattern has no grouping separator
	Grouping int
}

// Symbols carries the locale digit separators used when parsing pattern
// rendered text.
type Symbols struct {
	Decimal  rune
	Grouping rune
}

// NewSymbols derives separator symbols for a locale by rendering a probe
// number with the locale printer. Locales with non ASCII digit systems keep
// the root symbols.
func NewSymbols(tag language.Tag) Symbols {
	ret := Symbols{Decimal: '.', Grouping: ','}
	printer := message.NewPrinter(tag)
	probe := printer.Sprint(number.Decimal(1234567.8, number.Scale(1)))
	digits := 0
	var separators []rune
	for _, r := range probe {
		if r >= '0' && r <= '9' {
			digits++
			continue
		}
		separators = append(separators, r)
	}
	if digits != 8 || len(separators) == 0 {
		return ret
	}
	ret.Decimal = separators[len(separators)-1]
	if len(separators) > 1 {
		ret.Grouping = separators[0]
	}
	return ret
}

// ParsePattern parses a decimal format pattern.
func ParsePattern(text string) (*Pattern, error) {
	if text == "" {
		return nil, fmt.Errorf("pattern was empty")
	}
	positive, negative := splitSubPatterns(text)
	ret := &Pattern{}
	if err := ret.parseSubPattern(positive, false); err != nil {
		return nil, err
	}
	if negative != "" {
		if err := ret.parseSubPattern(negative, true); err != nil {
			return nil, err
		}
	} else {
		ret.NegativePrefix = "-" + ret.Prefix
		ret.NegativeSuffix = ret.Suffix
	}
	return ret, nil
}

func splitSubPatterns(text string) (string, string) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	match := cursor.MatchAny(subPatternMatcher)
	if match.Code != subPatternToken {
		return text, ""
	}
	matched := match.Text(cursor)
	return matched[:len(matched)-1], string(cursor.Input[cursor.Pos:])
}

func (p *Pattern) parseSubPattern(sub string, negative bool) error {
	prefix, body, suffix := splitAffixes(sub)
	if negative {
		//the negative sub pattern only redefines affixes
		p.NegativePrefix, p.NegativeSuffix = prefix, suffix
		return nil
	}
	if strings.IndexAny(body, "0#") == -1 {
		return fmt.Errorf("invalid pattern: %q", sub)
	}
	p.Prefix, p.Suffix = prefix, suffix
	intPart := body
	fraction := ""
	if index := strings.IndexByte(body, '.'); index != -1 {
		intPart, fraction = body[:index], body[index+1:]
	}
	if index := strings.LastIndexByte(intPart, ','); index != -1 {
		p.Grouping = len(intPart) - index - 1
	}
	p.MinInteger = strings.Count(intPart, "0")
	p.MinFraction = strings.Count(fraction, "0")
	p.MaxFraction = p.MinFraction + strings.Count(fraction, "#")
	return nil
}

func isPatternChar(r byte) bool {
	switch r {
	case '#', '0', ',', '.':
		return true
	}
	return false
}

// splitAffixes separates a sub pattern into prefix literal, digit body and
// suffix literal, honoring quoted literal blocks.
func splitAffixes(sub string) (string, string, string) {
	cursor := parsly.NewCursor("", []byte(sub), 0)
	prefix := matchAffix(cursor, true)
	start := cursor.Pos
	for cursor.Pos < len(cursor.Input) && isPatternChar(cursor.Input[cursor.Pos]) {
		cursor.Pos++
	}
	body := string(cursor.Input[start:cursor.Pos])
	suffix := matchAffix(cursor, false)
	return prefix, body, suffix
}

func matchAffix(cursor *parsly.Cursor, leading bool) string {
	var affix strings.Builder
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAny(quotedBlockMatcher)
		if match.Code == quotedBlockToken {
			text := match.Text(cursor)
			affix.WriteString(text[1 : len(text)-1])
			continue
		}
		if leading && isPatternChar(cursor.Input[cursor.Pos]) {
			break
		}
		affix.WriteByte(cursor.Input[cursor.Pos])
		cursor.Pos++
	}
	return affix.String()
}

// Parse parses text rendered with this pattern into an arbitrary precision
// number.
func (p *Pattern) Parse(text string, symbols Symbols) (*big.Float, error) {
	trimmed := strings.TrimSpace(text)
	negative := false
	if hasAffixes(trimmed, p.NegativePrefix, p.NegativeSuffix) {
		negative = true
		trimmed = trimmed[len(p.NegativePrefix) : len(trimmed)-len(p.NegativeSuffix)]
	} else if hasAffixes(trimmed, p.Prefix, p.Suffix) {
		trimmed = trimmed[len(p.Prefix) : len(trimmed)-len(p.Suffix)]
	}
	var digits strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == symbols.Decimal:
			digits.WriteByte('.')
		case r == symbols.Grouping:
			//grouping separators are cosmetic
		default:
			return nil, fmt.Errorf("unexpected character %q in %q", r, text)
		}
	}
	if digits.Len() == 0 {
		return nil, fmt.Errorf("no digits in %q", text)
	}
	literal := digits.String()
	if negative {
		literal = "-" + literal
	}
	ret, _, err := big.ParseFloat(literal, 10, 128, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", text, err)
	}
	return ret, nil
}

func hasAffixes(text, prefix, suffix string) bool {
	if prefix == "" && suffix == "" {
		return false
	}
	if len(text) < len(prefix)+len(suffix) {
		return false
	}
	return strings.HasPrefix(text, prefix) && strings.HasSuffix(text, suffix)
}

// Format renders a value with this pattern in the supplied locale.
func (p *Pattern) Format(value *big.Float, tag language.Tag) string {
	printer := message.NewPrinter(tag)
	f64, _ := value.Float64()
	options := []number.Option{
		number.MinFractionDigits(p.MinFraction),
		number.MaxFractionDigits(p.MaxFraction),
	}
	if p.Grouping == 0 {
		options = append(options, number.NoSeparator())
	}
	rendered := printer.Sprint(number.Decimal(f64, options...))
	if strings.HasPrefix(rendered, "-") {
		return p.NegativePrefix + rendered[1:] + p.NegativeSuffix
	}
	return p.Prefix + rendered + p.Suffix
}
