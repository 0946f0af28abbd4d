package resolve

//go:generate go tool stringer -type=Mode -output=mode_string.go

// Mode picks which end of the ranked match list is selected.
type Mode int

const (
	// ModeMostSpecific picks the narrowest matching signature.
	ModeMostSpecific Mode = iota
	// ModeMostGeneric picks the widest matching signature.
	ModeMostGeneric
	// ModeAny picks the first matching signature in declaration order. It
	// never reports an ambiguity.
	ModeAny
)
