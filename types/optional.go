package types

// Optional tracks whether a field was set at all, so that an untouched
// field can be left out of the serialized form instead of being sent as
// false or zero.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) ValueOr(def T) T {
	if !o.set {
		return def
	}

	return o.value
}
