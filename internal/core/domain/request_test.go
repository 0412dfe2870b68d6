package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/starter/internal/core/domain"
)

func TestNewProjectRequest(t *testing.T) {
	req := domain.NewProjectRequest("r1", " demo ", " 1.5.2.RELEASE ", []string{"web", " security ", "web"})

	assert.Equal(t, "r1", req.ID)
	assert.Equal(t, "demo", req.Name)
	assert.Equal(t, "1.5.2.RELEASE", req.BootVersion)
	assert.Equal(t, []string{"web", "security"}, req.Selected)
	assert.NotNil(t, req.Resolved)
	assert.Equal(t, 0, req.Resolved.Len())
}

func TestNormalizeIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "comma separated", in: []string{"web,security", "data-jpa"}, want: []string{"web", "security", "data-jpa"}},
		{name: "blanks dropped", in: []string{"", " , ", "web,,"}, want: []string{"web"}},
		{name: "duplicates keep first", in: []string{"security", "web", "security"}, want: []string{"security", "web"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeIDs(tt.in))
		})
	}
}
