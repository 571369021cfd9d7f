package parametly

import (
	"errors"
	"log/slog"
	"time"

	"github.com/viant/parametly/conv"
	"github.com/viant/parametly/format"
	"golang.org/x/text/language"
)

// DeclarationFilter lets callers inject or reshape the declaration list
// before a batch is applied.
type DeclarationFilter func(declarations []*Declaration) []*Declaration

// Applier coerces raw inputs onto declared parameters. An applier holds no
// per call state and is safe for concurrent use.
type Applier struct {
	registry *conv.Registry
	locale   language.Tag
	symbols  format.Symbols
	logger   *slog.Logger
	filter   DeclarationFilter
}

// Option customizes an applier.
type Option func(a *Applier)

// WithRegistry overrides the fallback converter registry.
func WithRegistry(registry *conv.Registry) Option {
	return func(a *Applier) {
		a.registry = registry
	}
}

// WithLocale sets the locale used by pattern based parsing.
func WithLocale(tag language.Tag) Option {
	return func(a *Applier) {
		a.locale = tag
	}
}

// WithLogger overrides the per parameter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Applier) {
		a.logger = logger
	}
}

// WithDeclarationFilter sets a declaration filter.
func WithDeclarationFilter(filter DeclarationFilter) Option {
	return func(a *Applier) {
		a.filter = filter
	}
}

// New creates an applier.
func New(opts ...Option) *Applier {
	ret := &Applier{
		locale: language.AmericanEnglish,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.registry == nil {
		ret.registry = DefaultRegistry()
	}
	ret.symbols = format.NewSymbols(ret.locale)
	return ret
}

// Apply coerces raw inputs onto declared parameters, writing successes into
// the values sink and collecting per parameter failures into the result.
// Failures are isolated per parameter and never abort the batch; only an
// invalid schema surfaces through the error return and voids the batch.
func (a *Applier) Apply(declarations []*Declaration, inputs map[string]interface{}, values *Values, result *ValidationResult) (*ValidationResult, error) {
	if result == nil {
		result = NewValidationResult()
	}
	if len(inputs) == 0 {
		return result, nil
	}
	if values == nil {
		values = NewValues()
	}
	if a.filter != nil {
		declarations = a.filter(declarations)
	}
	for _, declaration := range declarations {
		rawValue, ok := inputs[declaration.Name]
		if !ok {
			//absence is not an error, the parameter stays untouched
			continue
		}
		converted, err := a.computeValue(declaration, rawValue)
		if err != nil {
			var schemaErr *SchemaError
			if errors.As(err, &schemaErr) {
				return result, err
			}
			a.logger.Warn("unable to apply parameter", "parameter", declaration.Name, "error", err)
			result.AddError(declaration.Name, err.Error())
			continue
		}
		values.Put(declaration.Name, converted)
		a.logger.Info("applied parameter", "parameter", declaration.Name, "raw", rawValue, "value", converted)
	}
	return result, nil
}

// DefaultRegistry returns a converter registry extended with the date/time
// family converters used as the registry fallback for date targets.
func DefaultRegistry() *conv.Registry {
	registry := conv.New()
	registry.Register(timeType, func(text string) (interface{}, error) {
		return parseCanonicalTime(text)
	})
	registry.Register(dateOnlyType, func(text string) (interface{}, error) {
		parsed, err := parseCanonicalTime(text)
		if err != nil {
			return nil, err
		}
		return DateOnly(parsed), nil
	})
	registry.Register(timeOnlyType, func(text string) (interface{}, error) {
		parsed, err := parseCanonicalTime(text)
		if err != nil {
			return nil, err
		}
		return TimeOnly(parsed), nil
	})
	registry.Register(timestampType, func(text string) (interface{}, error) {
		parsed, err := parseCanonicalTime(text)
		if err != nil {
			return nil, err
		}
		return Timestamp(parsed), nil
	})
	return registry
}

func parseCanonicalTime(text string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, naiveLayout, dateLayout} {
		if ret, err := time.Parse(layout, text); err == nil {
			return ret, nil
		}
	}
	return time.Time{}, &DateParseError{Text: text}
}
