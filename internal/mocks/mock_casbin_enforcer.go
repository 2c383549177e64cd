package mocks

import "github.com/you/streamsvc/domain"

// MockCasbinEnforcer implements the CasbinEnforcer interface for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc   func(rvals ...interface{}) (bool, error)
	GetPolicyFunc func() ([][]string, error)
	policies      [][]string
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{
		policies: [][]string{
			{"role_user", "/auth/me", "GET"},
			{"role_user", "/auth/logout", "POST"},
			{"role_user", "/watchlist", "GET"},
		},
	}
}

// AddPolicy adds a new policy rule
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}

	// Default behavior: add to internal policies list unless present
	policy := toStrings(params)
	if len(policy) < 3 {
		return false, nil
	}
	for _, existing := range m.policies {
		if equal(existing, policy) {
			return false, nil
		}
	}
	m.policies = append(m.policies, policy)
	return true, nil
}

// Enforce checks if a request should be allowed
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}

	// Default behavior: exact match against stored policies
	request := toStrings(rvals)
	for _, policy := range m.policies {
		if equal(policy, request) {
			return true, nil
		}
	}
	return false, nil
}

// GetPolicy returns all policies
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	// Return copy of internal policies
	result := make([][]string, len(m.policies))
	for i, policy := range m.policies {
		result[i] = make([]string, len(policy))
		copy(result[i], policy)
	}
	return result, nil
}

func toStrings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			out[i] = s
		}
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
