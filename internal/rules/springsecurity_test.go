package rules_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starter/internal/adapters/versioncache"
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports/mocks"
	"go.trai.ch/starter/internal/rules"
	"go.uber.org/mock/gomock"
)

var catalog = map[string]domain.Dependency{
	"web":               domain.MustDependency("web", "org.springframework.boot", "spring-boot-starter-web", domain.ScopeCompile),
	"security":          domain.MustDependency("security", "org.springframework.boot", "spring-boot-starter-security", domain.ScopeCompile),
	"security-reactive": domain.MustDependency("security-reactive", "org.springframework.boot", "spring-boot-starter-security-reactive", domain.ScopeCompile),
}

func newRequest(bootVersion string, ids ...string) *domain.ProjectRequest {
	req := domain.NewProjectRequest("req", "demo", bootVersion, ids)
	for _, id := range ids {
		req.Resolved.Add(catalog[id])
	}
	return req
}

func newParser(t *testing.T) *versioncache.Parser {
	t.Helper()
	p, err := versioncache.NewParser(0)
	require.NoError(t, err)
	return p
}

var securityTest = domain.MustDependency("security-test", "org.springframework.security", "spring-security-test", domain.ScopeTest)

func TestSpringSecurityTest_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		ids         []string
		bootVersion string
		want        []string
		wantWarn    bool
	}{
		{name: "security at threshold", ids: []string{"security"}, bootVersion: "1.3.0", want: []string{"security", "security-test"}},
		{name: "security below threshold", ids: []string{"security"}, bootVersion: "1.2.9", want: []string{"security"}},
		{name: "no trigger", ids: []string{"web"}, bootVersion: "2.0.0", want: []string{"web"}},
		{name: "reactive security", ids: []string{"security-reactive"}, bootVersion: "1.3.0", want: []string{"security-reactive", "security-test"}},
		{name: "unparsable version", ids: []string{"security"}, bootVersion: "garbage", want: []string{"security"}, wantWarn: true},
		{name: "release qualifier", ids: []string{"web", "security"}, bootVersion: "1.5.2.RELEASE", want: []string{"web", "security", "security-test"}},
		{name: "release candidate below threshold", ids: []string{"security"}, bootVersion: "1.3.0.RC1", want: []string{"security"}},
		{name: "empty version", ids: []string{"security"}, bootVersion: "", want: []string{"security"}, wantWarn: true},
		{name: "empty request", bootVersion: "2.0.0", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			if tt.wantWarn {
				log.EXPECT().Warn(gomock.Any()).Times(1)
			}

			rule, err := rules.NewSpringSecurityTest(newParser(t), log)
			require.NoError(t, err)

			req := newRequest(tt.bootVersion, tt.ids...)
			rule.Apply(req, nil)

			assert.Equal(t, tt.want, req.Resolved.IDs())
		})
	}
}

func TestSpringSecurityTest_AddedDependency(t *testing.T) {
	rule, err := rules.NewSpringSecurityTest(newParser(t), nil)
	require.NoError(t, err)

	req := newRequest("1.4.0.RELEASE", "security")
	rule.Apply(req, nil)

	got, ok := req.Resolved.Get("security-test")
	require.True(t, ok)
	assert.Equal(t, securityTest, got)
	assert.Equal(t, "org.springframework.security:spring-security-test", got.Coordinates())
	assert.Equal(t, domain.ScopeTest, got.Scope)
}

func TestSpringSecurityTest_Idempotent(t *testing.T) {
	rule, err := rules.NewSpringSecurityTest(newParser(t), nil)
	require.NoError(t, err)

	once := newRequest("1.3.0", "security")
	rule.Apply(once, nil)

	twice := newRequest("1.3.0", "security")
	rule.Apply(twice, nil)
	rule.Apply(twice, nil)

	assert.Equal(t, once.Resolved.All(), twice.Resolved.All())
	assert.Equal(t, 2, twice.Resolved.Len())
}

func TestSpringSecurityTest_AlreadyPresentSkipsParsing(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockVersionParser(ctrl)
	parser.EXPECT().Parse("1.3.0.RELEASE").Return(domain.MustParseVersion("1.3.0.RELEASE"), nil)

	rule, err := rules.NewSpringSecurityTest(parser, nil)
	require.NoError(t, err)

	// The request carries its own security-test entry with a pinned version.
	pinned := securityTest
	pinned.Version = "5.0.0.RELEASE"
	req := newRequest("garbage", "security")
	req.Resolved.Add(pinned)

	rule.Apply(req, nil)

	got, _ := req.Resolved.Get("security-test")
	assert.Equal(t, "5.0.0.RELEASE", got.Version)
	assert.Equal(t, 2, req.Resolved.Len())
}

func TestSpringSecurityTest_NoTriggerSkipsParsing(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockVersionParser(ctrl)
	parser.EXPECT().Parse("1.3.0.RELEASE").Return(domain.MustParseVersion("1.3.0.RELEASE"), nil)

	rule, err := rules.NewSpringSecurityTest(parser, nil)
	require.NoError(t, err)

	req := newRequest("banana", "web")
	rule.Apply(req, nil)

	assert.Equal(t, []string{"web"}, req.Resolved.IDs())
}

func TestSpringSecurityTest_NilRequest(t *testing.T) {
	rule, err := rules.NewSpringSecurityTest(newParser(t), nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		rule.Apply(nil, nil)
		rule.Apply(&domain.ProjectRequest{BootVersion: "2.0.0"}, nil)
	})
}

func TestSpringSecurityTest_ConcurrentRequests(t *testing.T) {
	rule, err := rules.NewSpringSecurityTest(newParser(t), nil)
	require.NoError(t, err)

	versions := []string{"1.2.0", "1.3.0", "1.5.2.RELEASE", "2.0.0.M1"}
	reqs := make([]*domain.ProjectRequest, 64)
	for i := range reqs {
		reqs[i] = newRequest(versions[i%len(versions)], "security")
	}

	var wg sync.WaitGroup
	for _, req := range reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rule.Apply(req, nil)
		}()
	}
	wg.Wait()

	for i, req := range reqs {
		want := versions[i%len(versions)] != "1.2.0"
		assert.Equal(t, want, req.Resolved.Has("security-test"), "request %d (%s)", i, req.BootVersion)
	}
}

func TestSpringSecurityTest_Describe(t *testing.T) {
	rule, err := rules.NewSpringSecurityTest(newParser(t), nil)
	require.NoError(t, err)

	assert.Equal(t, rules.SpringSecurityTestName, rule.Name())
	assert.Equal(t, rules.SpringSecurityTestSpec(), rule.Describe())

	spec := rule.Describe()
	spec.Triggers[0] = "mutated"
	assert.Equal(t, []string{"security", "security-reactive"}, rule.Describe().Triggers)
}
