package ticket

import "fmt"

type assigneeChangeKind int

const (
	assigneeUnspecified assigneeChangeKind = iota
	assigneeClear
	assigneeAssignTo
	assigneeAssignToSelf
)

// AssigneeChange describes what an update does to the ticket's assignee.
// The zero value leaves the assignee untouched.
type AssigneeChange struct {
	kind   assigneeChangeKind
	userID uint
}

func AssigneeUnspecified() AssigneeChange {
	return AssigneeChange{}
}

func ClearAssignee() AssigneeChange {
	return AssigneeChange{kind: assigneeClear}
}

func AssignTo(userID uint) AssigneeChange {
	return AssigneeChange{kind: assigneeAssignTo, userID: userID}
}

func AssignToSelf() AssigneeChange {
	return AssigneeChange{kind: assigneeAssignToSelf}
}

// AssigneeChangeFromWire decodes the HTTP representation: nil leaves the assignee
// untouched, 0 clears it, -1 assigns the caller and a positive value names a user.
func AssigneeChangeFromWire(v *int64) (AssigneeChange, error) {
	if v == nil {
		return AssigneeUnspecified(), nil
	}
	switch {
	case *v == 0:
		return ClearAssignee(), nil
	case *v == -1:
		return AssignToSelf(), nil
	case *v > 0:
		return AssignTo(uint(*v)), nil
	}
	return AssigneeChange{}, fmt.Errorf("invalid assignee_id: %d", *v)
}

func (a AssigneeChange) IsUnspecified() bool {
	return a.kind == assigneeUnspecified
}

func (a AssigneeChange) IsClear() bool {
	return a.kind == assigneeClear
}

// Target resolves the concrete assignee this change sets, given the acting user.
// ok is false for Unspecified and Clear.
func (a AssigneeChange) Target(actorID uint) (userID uint, ok bool) {
	switch a.kind {
	case assigneeAssignTo:
		return a.userID, true
	case assigneeAssignToSelf:
		return actorID, true
	}
	return 0, false
}

func (a AssigneeChange) String() string {
	switch a.kind {
	case assigneeClear:
		return "clear"
	case assigneeAssignTo:
		return fmt.Sprintf("assign_to(%d)", a.userID)
	case assigneeAssignToSelf:
		return "assign_to_self"
	}
	return "unspecified"
}
