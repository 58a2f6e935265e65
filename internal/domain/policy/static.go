package policy

// StaticChecker is an in-memory Checker over a fixed rule set.
type StaticChecker struct {
	grants map[Rule]struct{}
}

func NewStaticChecker(rules []Rule) *StaticChecker {
	grants := make(map[Rule]struct{}, len(rules))
	for _, r := range rules {
		grants[r] = struct{}{}
	}
	return &StaticChecker{grants: grants}
}

func (s *StaticChecker) Can(p Principal, action Action, resource Resource) bool {
	_, ok := s.grants[Rule{Role: p.Role, Resource: resource, Action: action}]
	return ok
}
