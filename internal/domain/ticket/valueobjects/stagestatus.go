package valueobjects

type StageStatus string

const (
	StageNotStarted StageStatus = "not_started"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
)

func (s StageStatus) String() string {
	return string(s)
}

func (s StageStatus) IsValid() bool {
	return s == StageNotStarted || s == StageInProgress || s == StageCompleted
}

func (s StageStatus) IsCompleted() bool {
	return s == StageCompleted
}
