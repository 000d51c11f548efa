package koda

// Ordinal identifies which slot of an Either family value is populated.
type Ordinal int

const (
	FirstSlot Ordinal = iota + 1
	SecondSlot
	ThirdSlot
	FourthSlot
	FifthSlot
)

func (o Ordinal) String() string {
	switch o {
	case FirstSlot:
		return "First"
	case SecondSlot:
		return "Second"
	case ThirdSlot:
		return "Third"
	case FourthSlot:
		return "Fourth"
	case FifthSlot:
		return "Fifth"
	}
	return "Invalid"
}

// Either holds exactly one of A or B.
type Either[A, B any] struct {
	which  Ordinal
	first  A
	second B
}

func First[A, B any](a A) Either[A, B]  { return Either[A, B]{which: FirstSlot, first: a} }
func Second[A, B any](b B) Either[A, B] { return Either[A, B]{which: SecondSlot, second: b} }

func (e Either[A, B]) Which() Ordinal    { return e.which }
func (e Either[A, B]) First() (A, bool)  { return e.first, e.which == FirstSlot }
func (e Either[A, B]) Second() (B, bool) { return e.second, e.which == SecondSlot }

// Swap exchanges the slots.
func (e Either[A, B]) Swap() Either[B, A] {
	if e.which == FirstSlot {
		return Second[B](e.first)
	}
	return First[B, A](e.second)
}

func (e Either[A, B]) String() string {
	if e.which == FirstSlot {
		return "First(" + sprint(e.first) + ")"
	}
	return "Second(" + sprint(e.second) + ")"
}

// MapFirst transforms the First slot.
func MapFirst[A, B, C any](e Either[A, B], fn func(A) C) Either[C, B] {
	if e.which == FirstSlot {
		return First[C, B](fn(e.first))
	}
	return Second[C](e.second)
}

// MapSecond transforms the Second slot.
func MapSecond[A, B, C any](e Either[A, B], fn func(B) C) Either[A, C] {
	if e.which == SecondSlot {
		return Second[A](fn(e.second))
	}
	return First[A, C](e.first)
}

// MatchEither folds an Either into a single value.
func MatchEither[A, B, R any](e Either[A, B], onFirst func(A) R, onSecond func(B) R) R {
	if e.which == FirstSlot {
		return onFirst(e.first)
	}
	return onSecond(e.second)
}

// Either3 holds exactly one of A, B or C.
type Either3[A, B, C any] struct {
	which  Ordinal
	first  A
	second B
	third  C
}

func First3[A, B, C any](a A) Either3[A, B, C]  { return Either3[A, B, C]{which: FirstSlot, first: a} }
func Second3[A, B, C any](b B) Either3[A, B, C] { return Either3[A, B, C]{which: SecondSlot, second: b} }
func Third3[A, B, C any](c C) Either3[A, B, C]  { return Either3[A, B, C]{which: ThirdSlot, third: c} }

func (e Either3[A, B, C]) Which() Ordinal    { return e.which }
func (e Either3[A, B, C]) First() (A, bool)  { return e.first, e.which == FirstSlot }
func (e Either3[A, B, C]) Second() (B, bool) { return e.second, e.which == SecondSlot }
func (e Either3[A, B, C]) Third() (C, bool)  { return e.third, e.which == ThirdSlot }

func (e Either3[A, B, C]) String() string {
	return e.which.String() + "(" + sprint(e.slot()) + ")"
}

func (e Either3[A, B, C]) slot() any {
	switch e.which {
	case FirstSlot:
		return e.first
	case SecondSlot:
		return e.second
	}
	return e.third
}

// Either4 holds exactly one of A, B, C or D.
type Either4[A, B, C, D any] struct {
	which  Ordinal
	first  A
	second B
	third  C
	fourth D
}

func First4[A, B, C, D any](a A) Either4[A, B, C, D] {
	return Either4[A, B, C, D]{which: FirstSlot, first: a}
}
func Second4[A, B, C, D any](b B) Either4[A, B, C, D] {
	return Either4[A, B, C, D]{which: SecondSlot, second: b}
}
func Third4[A, B, C, D any](c C) Either4[A, B, C, D] {
	return Either4[A, B, C, D]{which: ThirdSlot, third: c}
}
func Fourth4[A, B, C, D any](d D) Either4[A, B, C, D] {
	return Either4[A, B, C, D]{which: FourthSlot, fourth: d}
}

func (e Either4[A, B, C, D]) Which() Ordinal    { return e.which }
func (e Either4[A, B, C, D]) First() (A, bool)  { return e.first, e.which == FirstSlot }
func (e Either4[A, B, C, D]) Second() (B, bool) { return e.second, e.which == SecondSlot }
func (e Either4[A, B, C, D]) Third() (C, bool)  { return e.third, e.which == ThirdSlot }
func (e Either4[A, B, C, D]) Fourth() (D, bool) { return e.fourth, e.which == FourthSlot }

func (e Either4[A, B, C, D]) String() string {
	var v any
	switch e.which {
	case FirstSlot:
		v = e.first
	case SecondSlot:
		v = e.second
	case ThirdSlot:
		v = e.third
	default:
		v = e.fourth
	}
	return e.which.String() + "(" + sprint(v) + ")"
}

// Either5 holds exactly one of A, B, C, D or E.
type Either5[A, B, C, D, E any] struct {
	which  Ordinal
	first  A
	second B
	third  C
	fourth D
	fifth  E
}

func First5[A, B, C, D, E any](a A) Either5[A, B, C, D, E] {
	return Either5[A, B, C, D, E]{which: FirstSlot, first: a}
}
func Second5[A, B, C, D, E any](b B) Either5[A, B, C, D, E] {
	return Either5[A, B, C, D, E]{which: SecondSlot, second: b}
}
func Third5[A, B, C, D, E any](c C) Either5[A, B, C, D, E] {
	return Either5[A, B, C, D, E]{which: ThirdSlot, third: c}
}
func Fourth5[A, B, C, D, E any](d D) Either5[A, B, C, D, E] {
	return Either5[A, B, C, D, E]{which: FourthSlot, fourth: d}
}
func Fifth5[A, B, C, D, E any](e E) Either5[A, B, C, D, E] {
	return Either5[A, B, C, D, E]{which: FifthSlot, fifth: e}
}

func (e Either5[A, B, C, D, E]) Which() Ordinal    { return e.which }
func (e Either5[A, B, C, D, E]) First() (A, bool)  { return e.first, e.which == FirstSlot }
func (e Either5[A, B, C, D, E]) Second() (B, bool) { return e.second, e.which == SecondSlot }
func (e Either5[A, B, C, D, E]) Third() (C, bool)  { return e.third, e.which == ThirdSlot }
func (e Either5[A, B, C, D, E]) Fourth() (D, bool) { return e.fourth, e.which == FourthSlot }
func (e Either5[A, B, C, D, E]) Fifth() (E, bool)  { return e.fifth, e.which == FifthSlot }

func (e Either5[A, B, C, D, E]) String() string {
	var v any
	switch e.which {
	case FirstSlot:
		v = e.first
	case SecondSlot:
		v = e.second
	case ThirdSlot:
		v = e.third
	case FourthSlot:
		v = e.fourth
	default:
		v = e.fifth
	}
	return e.which.String() + "(" + sprint(v) + ")"
}

// Tuple2 is a fixed pair.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 is a fixed triple.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}
