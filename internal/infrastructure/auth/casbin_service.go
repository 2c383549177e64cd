package auth

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/you/streamsvc/domain"
	"gorm.io/gorm"
)

// DefaultPolicies grant the user role its protected routes
var DefaultPolicies = [][]string{
	{"role_user", "/auth/me", "GET"},
	{"role_user", "/auth/me/preferences", "PATCH"},
	{"role_user", "/auth/logout", "POST"},
	{"role_user", "/watchlist", "GET"},
	{"role_user", "/watchlist", "POST"},
	{"role_user", "/watchlist/:id", "PATCH"},
	{"role_user", "/watchlist/:id", "DELETE"},
}

type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService loads the model file and keeps policies in the casbin_rule table.
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{e}, nil
}

// NewInMemoryCasbinService builds an enforcer from model text with no adapter.
func NewInMemoryCasbinService(modelText string) (*CasbinService, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	return &CasbinService{e}, nil
}

// EnsureDefaultPolicies adds any missing DefaultPolicies through policies.
func EnsureDefaultPolicies(policies domain.PolicyService) error {
	for _, p := range DefaultPolicies {
		if err := policies.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return nil
}
