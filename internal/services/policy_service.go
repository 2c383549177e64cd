package services

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/you/streamsvc/domain"
)

// CasbinEnforcerWrapper wraps the real Casbin enforcer to implement our interface
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

// NewCasbinEnforcerWrapper creates a wrapper for the real Casbin enforcer
func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

// PolicyServiceImpl implements domain.PolicyService using Casbin
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: NewCasbinEnforcerWrapper(enforcer),
	}
}

// NewPolicyServiceWithEnforcer creates a new policy service with a CasbinEnforcer interface (for testing)
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: enforcer,
	}
}

// AddPolicy implements domain.PolicyService. Existing rules are left as is; new
// rules are persisted by the enforcer's adapter.
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	if _, err := p.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() ([][]string, error) {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	return policies, nil
}
