package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StageType names one of the six fixed steps of a ticket's resolution workflow.
type StageType string

const (
	StageAbnormalDescription  StageType = "abnormal_description"
	StageAbnormalAnalysis     StageType = "abnormal_analysis"
	StageRequiredParts        StageType = "required_parts"
	StageOnSiteSolution       StageType = "on_site_solution"
	StageSummary              StageType = "summary"
	StageCustomerConfirmation StageType = "customer_confirmation"
)

var orderedStageTypes = []StageType{
	StageAbnormalDescription,
	StageAbnormalAnalysis,
	StageRequiredParts,
	StageOnSiteSolution,
	StageSummary,
	StageCustomerConfirmation,
}

var titleCaser = cases.Title(language.English)

// StageTypes returns the stage types in workflow order.
func StageTypes() []StageType {
	out := make([]StageType, len(orderedStageTypes))
	copy(out, orderedStageTypes)
	return out
}

func (s StageType) String() string {
	return string(s)
}

func (s StageType) IsValid() bool {
	for _, st := range orderedStageTypes {
		if st == s {
			return true
		}
	}
	return false
}

// Title renders the stage for people, e.g. "On Site Solution".
func (s StageType) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(s), "_", " "))
}

func NewStageType(s string) (StageType, error) {
	st := StageType(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid stage type: %s", s)
	}
	return st, nil
}
