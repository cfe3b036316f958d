package valueobjects

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusDisabled
}

func (s Status) IsActive() bool {
	return s == StatusActive
}
