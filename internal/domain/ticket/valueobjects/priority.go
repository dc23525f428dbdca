package valueobjects

import "fmt"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

var validPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
}

// priorityRank orders priorities for sorting; higher is more urgent.
var priorityRank = map[Priority]int{
	PriorityMedium: 1,
	PriorityHigh:   2,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) Rank() int {
	return priorityRank[p]
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
