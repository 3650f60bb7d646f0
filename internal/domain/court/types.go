package court

type Type string

const (
	TypeIndoor  Type = "indoor"
	TypeOutdoor Type = "outdoor"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeIndoor, TypeOutdoor:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance:
		return true
	default:
		return false
	}
}
