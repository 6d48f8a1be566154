package roomevent

type Kind string

const (
	KindShow           Kind = "SHOW"
	KindCleaning       Kind = "CLEANING"
	KindUnavailability Kind = "UNAVAILABILITY"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindShow, KindCleaning, KindUnavailability:
		return true
	default:
		return false
	}
}

type ShowKind string

const (
	ShowKindRegular  ShowKind = "REGULAR"
	ShowKindPremiere ShowKind = "PREMIERE"
)

func (s ShowKind) String() string {
	return string(s)
}

func (s ShowKind) IsValid() bool {
	switch s {
	case ShowKindRegular, ShowKindPremiere:
		return true
	default:
		return false
	}
}

type UnavailabilityReason string

const (
	ReasonRent  UnavailabilityReason = "RENT"
	ReasonParty UnavailabilityReason = "PARTY"
)

func (r UnavailabilityReason) String() string {
	return string(r)
}

func (r UnavailabilityReason) IsValid() bool {
	switch r {
	case ReasonRent, ReasonParty:
		return true
	default:
		return false
	}
}
