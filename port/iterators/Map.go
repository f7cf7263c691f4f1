package iterators

// Map transforms the elements of the origin iterator one by one.
//
// Every call is forwarded to the origin,
// the transform function is applied exactly once to each element the origin returns,
// and errors from either of them are returned as is.
// Remove removes the origin's last returned element, so Map keeps the origin's removal capability.
func Map[To any, From any](origin Iterator[From], transform func(From) (To, error)) Iterator[To] {
	return &mapIter[From, To]{Origin: origin, Transform: transform}
}

type mapIter[From any, To any] struct {
	Origin    Iterator[From]
	Transform func(From) (To, error)
}

func (i *mapIter[From, To]) HasNext() bool {
	return i.Origin.HasNext()
}

func (i *mapIter[From, To]) Next() (To, error) {
	v, err := i.Origin.Next()
	if err != nil {
		var zero To
		return zero, err
	}
	return i.Transform(v)
}

func (i *mapIter[From, To]) Remove() error {
	return i.Origin.Remove()
}

func (i *mapIter[From, To]) ForEachRemaining(action func(To) error) error {
	if action == nil {
		return ErrNilArgument.F("action is nil")
	}
	return i.Origin.ForEachRemaining(func(v From) error {
		out, err := i.Transform(v)
		if err != nil {
			return err
		}
		return action(out)
	})
}

// MapIterable is the Iterable form of Map.
// Each Iterator call maps a fresh iterator of the origin.
func MapIterable[To any, From any](origin Iterable[From], transform func(From) (To, error)) Iterable[To] {
	return &mapIterable[From, To]{Origin: origin, Transform: transform}
}

type mapIterable[From any, To any] struct {
	Origin    Iterable[From]
	Transform func(From) (To, error)
}

func (i *mapIterable[From, To]) Iterator() Iterator[To] {
	return Map(i.Origin.Iterator(), i.Transform)
}

func (i *mapIterable[From, To]) ForEach(action func(To) error) error {
	return ForEach[To](i, action)
}
