package mocks

import "github.com/you/streamsvc/domain"

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	AddPolicyFunc       func(role, resource, action string) error
	CheckPermissionFunc func(role, resource, action string) (bool, error)
	GetPoliciesFunc     func() ([][]string, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// AddPolicy adds a new authorization policy
func (m *MockPolicyService) AddPolicy(role, resource, action string) error {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(role, resource, action)
	}
	// Default behavior: success
	return nil
}

// CheckPermission checks if a role has permission for a resource and action
func (m *MockPolicyService) CheckPermission(role, resource, action string) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(role, resource, action)
	}
	// Default behavior: signed-in users may reach their own resources
	return role == "role_user", nil
}

// GetPolicies returns all current policies
func (m *MockPolicyService) GetPolicies() ([][]string, error) {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	return [][]string{
		{"role_user", "/auth/me", "GET"},
		{"role_user", "/watchlist", "GET"},
	}, nil
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*MockPolicyService)(nil)
