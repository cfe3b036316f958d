package permission

import (
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
)

// Sync makes the stored policy equal to the grant table: missing rows are
// added and rows no longer in the table are removed. Running it twice is a
// no-op.
func (e *Enforcer) Sync() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	want := make(map[[3]string]struct{})
	var missing [][]string
	for _, g := range permission.Grants() {
		key := [3]string{string(g.Role), string(g.Resource), string(g.Action)}
		want[key] = struct{}{}
		ok, err := e.enforcer.HasPolicy(key[0], key[1], key[2])
		if err != nil {
			return fmt.Errorf("failed to check policy: %w", err)
		}
		if !ok {
			missing = append(missing, key[:])
		}
	}

	current, err := e.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read policy: %w", err)
	}
	var stale [][]string
	for _, rule := range current {
		if len(rule) < 3 {
			continue
		}
		if _, ok := want[[3]string{rule[0], rule[1], rule[2]}]; !ok {
			stale = append(stale, rule)
		}
	}

	if len(missing) > 0 {
		if _, err := e.enforcer.AddPolicies(missing); err != nil {
			return fmt.Errorf("failed to add policies: %w", err)
		}
	}
	if len(stale) > 0 {
		if _, err := e.enforcer.RemovePolicies(stale); err != nil {
			return fmt.Errorf("failed to remove policies: %w", err)
		}
	}

	if len(missing) > 0 || len(stale) > 0 {
		e.logger.Infow("permission policy synchronised", "added", len(missing), "removed", len(stale))
	}
	return nil
}

// Policies returns the loaded (role, resource, action) rows.
func (e *Enforcer) Policies() ([][]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.enforcer.GetPolicy()
}
