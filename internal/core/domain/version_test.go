package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starter/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Version
	}{
		{input: "1.3.0", want: domain.Version{Major: 1, Minor: 3, Patch: 0}},
		{input: "1.3.0.RELEASE", want: domain.Version{Major: 1, Minor: 3, Qualifier: &domain.Qualifier{ID: "RELEASE"}}},
		{input: "2.0.0.M1", want: domain.Version{Major: 2, Qualifier: &domain.Qualifier{ID: "M", Number: 1}}},
		{input: "2.0.0-RC2", want: domain.Version{Major: 2, Qualifier: &domain.Qualifier{ID: "RC", Number: 2}}},
		{input: "1.5.0.BUILD-SNAPSHOT", want: domain.Version{Major: 1, Minor: 5, Qualifier: &domain.Qualifier{ID: "BUILD-SNAPSHOT"}}},
		{input: "2.1.0-SNAPSHOT", want: domain.Version{Major: 2, Minor: 1, Qualifier: &domain.Qualifier{ID: "BUILD-SNAPSHOT"}}},
		{input: "1.4.0.release", want: domain.Version{Major: 1, Minor: 4, Qualifier: &domain.Qualifier{ID: "RELEASE"}}},
		{input: "  10.20.30  ", want: domain.Version{Major: 10, Minor: 20, Patch: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseVersion(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, input := range []string{"", "banana", "1.3", "1.3.x", "1.3.0.", "v1.3.0", "1.3.0.RELEASE.1", "1..0"} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseVersion(input)
			require.ErrorIs(t, err, domain.ErrInvalidVersion)

			_, ok := domain.SafeParseVersion(input)
			assert.False(t, ok)
		})
	}
}

func TestMustParseVersion_Panics(t *testing.T) {
	assert.Panics(t, func() { domain.MustParseVersion("nope") })
	assert.NotPanics(t, func() { domain.MustParseVersion("1.0.0") })
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "1.3.0", domain.MustParseVersion("1.3.0").String())
	assert.Equal(t, "1.3.0.RELEASE", domain.MustParseVersion("1.3.0.RELEASE").String())
	assert.Equal(t, "2.0.0.RC2", domain.MustParseVersion("2.0.0-RC2").String())
}

func TestVersion_Compare(t *testing.T) {
	// Each version sorts strictly before the next one.
	ordered := []string{
		"1.2.9.RELEASE",
		"1.3.0.FOO",
		"1.3.0.M1",
		"1.3.0.M2",
		"1.3.0.RC1",
		"1.3.0.BUILD-SNAPSHOT",
		"1.3.0.RELEASE",
		"1.3.1.M1",
		"1.10.0",
		"2.0.0.M1",
	}

	for i := range ordered {
		for j := range ordered {
			a := domain.MustParseVersion(ordered[i])
			b := domain.MustParseVersion(ordered[j])
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, a.Compare(b), "%s vs %s", ordered[i], ordered[j])
		}
	}
}

func TestVersion_ReleaseEqualsNoQualifier(t *testing.T) {
	a := domain.MustParseVersion("1.3.0")
	b := domain.MustParseVersion("1.3.0.RELEASE")

	assert.True(t, a.Equal(b))
	assert.True(t, a.AtLeast(b))
	assert.True(t, b.AtLeast(a))
}

func TestVersion_UnknownQualifiersLexical(t *testing.T) {
	alpha := domain.MustParseVersion("1.0.0.ALPHA")
	beta := domain.MustParseVersion("1.0.0.BETA")

	assert.Equal(t, -1, alpha.Compare(beta))
	assert.Equal(t, -1, beta.Compare(domain.MustParseVersion("1.0.0.M1")))
}

func TestVersion_AtLeast(t *testing.T) {
	threshold := domain.MustParseVersion("1.3.0.RELEASE")

	tests := []struct {
		version string
		want    bool
	}{
		{version: "1.3.0.RELEASE", want: true},
		{version: "1.5.2.RELEASE", want: true},
		{version: "2.0.0.M1", want: true},
		{version: "1.2.9.RELEASE", want: false},
		{version: "1.3.0.RC1", want: false},
		{version: "1.3.0.BUILD-SNAPSHOT", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MustParseVersion(tt.version).AtLeast(threshold))
		})
	}
}
