package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/rules"
)

func TestNewImplied_Validation(t *testing.T) {
	implies := domain.MustDependency("x-test", "g", "a", domain.ScopeTest)

	tests := []struct {
		name    string
		spec    domain.RuleSpec
		wantMsg string
	}{
		{name: "no triggers", spec: domain.RuleSpec{Implies: implies}, wantMsg: "invalid rule"},
		{name: "blank triggers", spec: domain.RuleSpec{Triggers: []string{" ", ""}, Implies: implies}, wantMsg: "invalid rule"},
		{name: "invalid implied dependency", spec: domain.RuleSpec{Triggers: []string{"x"}}, wantMsg: "invalid rule"},
		{name: "invalid min version", spec: domain.RuleSpec{Triggers: []string{"x"}, MinVersion: "soon", Implies: implies}, wantMsg: "invalid version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.NewImplied(tt.spec, newParser(t), nil)
			require.ErrorContains(t, err, tt.wantMsg)
		})
	}

	_, err := rules.NewImplied(domain.RuleSpec{Triggers: []string{"x"}, Implies: implies}, nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidRule)
}

func TestImplied_DefaultsName(t *testing.T) {
	r, err := rules.NewImplied(domain.RuleSpec{
		Triggers: []string{"data-jpa"},
		Implies:  domain.MustDependency("h2", "com.h2database", "h2", domain.ScopeRuntime),
	}, newParser(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "h2", r.Name())
}

func TestImplied_WithoutMinVersion(t *testing.T) {
	r, err := rules.NewImplied(domain.RuleSpec{
		Name:     "h2",
		Triggers: []string{"web"},
		Implies:  domain.MustDependency("h2", "com.h2database", "h2", domain.ScopeRuntime),
	}, newParser(t), nil)
	require.NoError(t, err)

	// No version test is performed, so even a garbage version matches.
	req := newRequest("garbage", "web")
	r.Apply(req, nil)

	assert.Equal(t, []string{"web", "h2"}, req.Resolved.IDs())
}

func TestImplied_AnyTriggerMatches(t *testing.T) {
	r, err := rules.NewImplied(domain.RuleSpec{
		Triggers:   []string{"kafka", "web"},
		MinVersion: "1.0.0",
		Implies:    domain.MustDependency("x-test", "g", "a", domain.ScopeTest),
	}, newParser(t), nil)
	require.NoError(t, err)

	req := newRequest("1.0.0.RELEASE", "web")
	r.Apply(req, nil)

	assert.True(t, req.Resolved.Has("x-test"))
}
