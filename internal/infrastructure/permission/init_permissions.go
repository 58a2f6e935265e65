package permission

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed default_policy.yaml
var defaultPolicyYAML []byte

type policyFile struct {
	Roles map[string]map[string][]string `yaml:"roles"`
}

// DefaultRules returns the embedded grants as (role, resource, action) triples in a
// stable order.
func DefaultRules() ([][]string, error) {
	var file policyFile
	if err := yaml.Unmarshal(defaultPolicyYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse default policy: %w", err)
	}

	var rules [][]string
	for role, resources := range file.Roles {
		for resource, actions := range resources {
			for _, action := range actions {
				rules = append(rules, []string{role, resource, action})
			}
		}
	}
	sort.Slice(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return rules, nil
}

// SeedDefaults adds every default grant that is not stored yet.
func (e *Enforcer) SeedDefaults() error {
	rules, err := DefaultRules()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, rule := range rules {
		ok, err := e.enforcer.AddPolicy(rule[0], rule[1], rule[2])
		if err != nil {
			e.logger.Errorw("failed to add default permission policy",
				"error", err,
				"role", rule[0],
				"resource", rule[1],
				"action", rule[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", rule[0], rule[1], rule[2], err)
		}
		if ok {
			added++
		}
	}

	e.logger.Infow("default permissions seeded", "rules", len(rules), "added", added)
	return nil
}
