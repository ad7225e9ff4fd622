package structpad

// Option is an optional padding value that is no larger than P.
//
// The zero Option is absent. A present Option stores a bit pattern in the
// padding bytes that is never a valid P, so no separate flag is needed:
//
//	unsafe.Sizeof(Option[PadU32]{}) == unsafe.Sizeof(PadU32{})
//
// Zero-filled memory therefore reads back as None. Code that mirrors a format
// where the all-zero pattern means "present" must call Some explicitly.
type Option[P Sized] struct {
	v P
}

// Some returns a present Option.
func Some[P Sized](p P) Option[P] {
	return Option[P]{v: p.niche().(P)}
}

// None returns an absent Option. It is the same as the zero Option.
func None[P Sized]() Option[P] {
	return Option[P]{}
}

// Get returns the padding value and whether it is present.
// The returned P is always the valid zero value.
func (o Option[P]) Get() (P, bool) {
	var p P
	return p, o.v.occupied()
}

// IsSome reports whether o is present.
func (o Option[P]) IsSome() bool {
	return o.v.occupied()
}

// IsNone reports whether o is absent.
func (o Option[P]) IsNone() bool {
	return !o.v.occupied()
}

func (o Option[P]) String() string {
	if !o.v.occupied() {
		return "None"
	}
	var p P
	return "Some(" + p.String() + ")"
}

// OptionU0 is the optional form of PadU0.
//
// PadU0 has no bytes to hold a marker, so OptionU0 carries a bool and has the
// layout of struct{ bool }.
type OptionU0 struct {
	set bool
}

// SomeU0 returns a present OptionU0.
func SomeU0() OptionU0 { return OptionU0{set: true} }

// NoneU0 returns an absent OptionU0.
func NoneU0() OptionU0 { return OptionU0{} }

func (o OptionU0) Get() (PadU0, bool) { return PadU0{}, o.set }

func (o OptionU0) IsSome() bool { return o.set }

func (o OptionU0) IsNone() bool { return !o.set }

func (o OptionU0) String() string {
	if !o.set {
		return "None"
	}
	return "Some(PadU0)"
}
