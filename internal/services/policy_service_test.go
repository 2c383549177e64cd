package services

import (
	"errors"
	"testing"

	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/infrastructure/auth"
	"github.com/you/streamsvc/internal/mocks"
)

// createPolicyServiceForTest creates a PolicyService with mock Casbin enforcer
func createPolicyServiceForTest(t *testing.T) (domain.PolicyService, *mocks.MockCasbinEnforcer) {
	t.Helper()

	enforcer := mocks.NewMockCasbinEnforcer()
	return NewPolicyServiceWithEnforcer(enforcer), enforcer
}

func TestPolicyServiceImpl_AddPolicy(t *testing.T) {
	tests := []struct {
		name          string
		rule          []string
		setupMock     func(*mocks.MockCasbinEnforcer)
		expectError   bool
		expectedCount int
	}{
		{
			name:          "successful policy addition",
			rule:          []string{"role_user", "/watchlist", "POST"},
			setupMock:     func(e *mocks.MockCasbinEnforcer) {},
			expectedCount: 4,
		},
		{
			name:          "existing rule is not duplicated",
			rule:          []string{"role_user", "/auth/me", "GET"},
			setupMock:     func(e *mocks.MockCasbinEnforcer) {},
			expectedCount: 3,
		},
		{
			name: "add policy fails",
			rule: []string{"role_user", "/watchlist", "POST"},
			setupMock: func(e *mocks.MockCasbinEnforcer) {
				e.AddPolicyFunc = func(params ...interface{}) (bool, error) {
					return false, errors.New("adapter unavailable")
				}
			},
			expectError:   true,
			expectedCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, enforcer := createPolicyServiceForTest(t)
			tt.setupMock(enforcer)

			err := svc.AddPolicy(tt.rule[0], tt.rule[1], tt.rule[2])
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			policies, err := enforcer.GetPolicy()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(policies) != tt.expectedCount {
				t.Errorf("expected %d policies, got %d", tt.expectedCount, len(policies))
			}
		})
	}
}

func TestPolicyServiceImpl_CheckPermission(t *testing.T) {
	svc, _ := createPolicyServiceForTest(t)

	allowed, err := svc.CheckPermission("role_user", "/auth/me", "GET")
	if err != nil || !allowed {
		t.Errorf("expected permission granted, got %v (%v)", allowed, err)
	}

	allowed, err = svc.CheckPermission("role_guest", "/auth/me", "GET")
	if err != nil || allowed {
		t.Errorf("expected permission denied, got %v (%v)", allowed, err)
	}
}

func TestPolicyServiceImpl_GetPolicies(t *testing.T) {
	svc, _ := createPolicyServiceForTest(t)

	if err := svc.AddPolicy("role_user", "/watchlist", "POST"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	policies, err := svc.GetPolicies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(policies) != 4 {
		t.Fatalf("expected 4 policies, got %d", len(policies))
	}
	last := policies[len(policies)-1]
	if last[0] != "role_user" || last[1] != "/watchlist" || last[2] != "POST" {
		t.Errorf("unexpected policy %v", last)
	}
}

func TestPolicyServiceImpl_GetPoliciesError(t *testing.T) {
	svc, enforcer := createPolicyServiceForTest(t)
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return nil, errors.New("adapter unavailable")
	}

	policies, err := svc.GetPolicies()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if policies != nil {
		t.Errorf("expected no policies, got %v", policies)
	}
}

const testRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && r.act == p.act
`

func TestPolicyServiceImpl_WithCasbin(t *testing.T) {
	cs, err := auth.NewInMemoryCasbinService(testRBACModel)
	if err != nil {
		t.Fatalf("failed to build enforcer: %v", err)
	}
	svc := NewPolicyService(cs.E)
	for i := 0; i < 2; i++ {
		if err := auth.EnsureDefaultPolicies(svc); err != nil {
			t.Fatalf("failed to seed policies: %v", err)
		}
	}

	policies, err := svc.GetPolicies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(policies) != len(auth.DefaultPolicies) {
		t.Errorf("expected %d policies after reseeding, got %d", len(auth.DefaultPolicies), len(policies))
	}

	tests := []struct {
		role, path, method string
		want               bool
	}{
		{"role_user", "/watchlist/abc-123", "PATCH", true},
		{"role_user", "/watchlist/abc-123", "DELETE", true},
		{"role_user", "/watchlist", "PUT", false},
		{"role_guest", "/auth/me", "GET", false},
	}
	for _, tt := range tests {
		got, err := svc.CheckPermission(tt.role, tt.path, tt.method)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("CheckPermission(%s, %s, %s) = %v, want %v", tt.role, tt.path, tt.method, got, tt.want)
		}
	}
}
