package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want entity.Role
		ok   bool
	}{
		{"user", entity.RoleUser, true},
		{"requested_for_admin", entity.RoleRequestedForAdmin, true},
		{"admin", entity.RoleAdmin, true},
		{"superadmin", entity.RoleSuperadmin, true},
		{"Admin", "", false},
		{"", "", false},
		{"owner", "", false},
	}
	for _, tc := range cases {
		got, ok := entity.ParseRole(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
