package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/streamsvc/internal/mocks"
)

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

func TestEnsureDefaultPolicies(t *testing.T) {
	policies := mocks.NewMockPolicyService()
	var added [][]string
	policies.AddPolicyFunc = func(role, resource, action string) error {
		added = append(added, []string{role, resource, action})
		return nil
	}

	require.NoError(t, EnsureDefaultPolicies(policies))
	assert.Equal(t, DefaultPolicies, added)
}

func TestEnsureDefaultPolicies_StopsOnError(t *testing.T) {
	policies := mocks.NewMockPolicyService()
	calls := 0
	policies.AddPolicyFunc = func(role, resource, action string) error {
		calls++
		return errors.New("adapter unavailable")
	}

	assert.Error(t, EnsureDefaultPolicies(policies))
	assert.Equal(t, 1, calls)
}

func TestNewInMemoryCasbinService(t *testing.T) {
	svc, err := NewInMemoryCasbinService(testRBACModel)
	require.NoError(t, err)

	_, err = svc.E.AddPolicy("role_user", "/watchlist/:id", "DELETE")
	require.NoError(t, err)

	tests := []struct {
		name    string
		sub     string
		obj     string
		act     string
		allowed bool
	}{
		{"path parameter matches", "role_user", "/watchlist/3f2a", "DELETE", true},
		{"wrong method", "role_user", "/watchlist/3f2a", "GET", false},
		{"unknown role", "role_guest", "/watchlist/3f2a", "DELETE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.E.Enforce(tt.sub, tt.obj, tt.act)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, ok)
		})
	}

	_, err = NewInMemoryCasbinService("not a model")
	assert.Error(t, err)
}
