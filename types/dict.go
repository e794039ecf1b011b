package types

import (
	"encoding/json"
	"fmt"
	"math"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/domain"
)

// dictReader pulls known fields out of a decoded Bot API payload and
// remembers which keys it has seen, so everything else can be kept as
// api kwargs. The first type mismatch is kept in err.
type dictReader struct {
	data  map[string]any
	known map[string]struct{}
	bot   *tgbotapi.BotAPI
	err   error
}

func newDictReader(data map[string]any, bot *tgbotapi.BotAPI) *dictReader {
	return &dictReader{
		data:  data,
		known: make(map[string]struct{}, len(data)),
		bot:   bot,
	}
}

func (r *dictReader) value(key string) (any, bool) {
	r.known[key] = struct{}{}

	v, ok := r.data[key]

	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

func (r *dictReader) fail(key string, value any, expected string) {
	if r.err != nil {
		return
	}

	r.err = fmt.Errorf("%w: %q must be %s, got %T", domain.ErrorInvalidFieldType, key, expected, value)
}

func (r *dictReader) readString(key string) Optional[string] {
	v, ok := r.value(key)

	if !ok {
		return None[string]()
	}

	s, ok := v.(string)

	if !ok {
		r.fail(key, v, "string")
		return None[string]()
	}

	return Some(s)
}

func (r *dictReader) readBool(key string) Optional[bool] {
	v, ok := r.value(key)

	if !ok {
		return None[bool]()
	}

	b, ok := v.(bool)

	if !ok {
		r.fail(key, v, "bool")
		return None[bool]()
	}

	return Some(b)
}

func (r *dictReader) readInt(key string) Optional[int64] {
	v, ok := r.value(key)

	if !ok {
		return None[int64]()
	}

	i, ok := toInt64(v)

	if !ok {
		r.fail(key, v, "integer")
		return None[int64]()
	}

	return Some(i)
}

func (r *dictReader) readDict(key string) (map[string]any, bool) {
	v, ok := r.value(key)

	if !ok {
		return nil, false
	}

	d, ok := v.(map[string]any)

	if !ok {
		r.fail(key, v, "object")
		return nil, false
	}

	return d, true
}

func (r *dictReader) readList(key string) ([]any, bool) {
	v, ok := r.value(key)

	if !ok {
		return nil, false
	}

	l, ok := v.([]any)

	if !ok {
		r.fail(key, v, "array")
		return nil, false
	}

	return l, true
}

func (r *dictReader) apiKwargs() map[string]any {
	kwargs := make(map[string]any)

	for key, value := range r.data {
		if _, ok := r.known[key]; !ok {
			kwargs[key] = value
		}
	}

	return kwargs
}

func readObject[T any](r *dictReader, key string, parse func(map[string]any, *tgbotapi.BotAPI) (*T, error)) *T {
	data, ok := r.readDict(key)

	if !ok {
		return nil
	}

	obj, err := parse(data, r.bot)

	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("%s: %w", key, err)
		}
		return nil
	}

	return obj
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}

		f, err := n.Float64()

		if err != nil {
			return 0, false
		}

		return floatToInt64(f)
	}

	return 0, false
}

// floatToInt64 accepts integral values inside the int64 range. 2^63 itself
// is representable as float64 but not as int64.
func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

func putOptional[T any](dst map[string]any, key string, o Optional[T]) {
	if v, ok := o.Get(); ok {
		dst[key] = v
	}
}

func putObject[T descriptor](dst map[string]any, key string, v T) {
	var zero T

	if v != zero {
		dst[key] = v.ToDict()
	}
}
