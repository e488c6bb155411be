package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/access"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

func TestCanCreateCompany(t *testing.T) {
	for _, r := range []entity.Role{entity.RoleAdmin, entity.RoleSuperadmin} {
		assert.NoError(t, access.CanCreateCompany(&entity.User{Role: r}), r)
	}
	for _, r := range []entity.Role{entity.RoleUser, entity.RoleRequestedForAdmin} {
		err := access.CanCreateCompany(&entity.User{Role: r})
		require.Error(t, err, r)
		assert.True(t, errors.Is(err, domain.ErrAuthorizationDenied))
		assert.Contains(t, err.Error(), "superadmin authorization")
	}
	assert.Error(t, access.CanCreateCompany(nil))
}

func TestRequireSuperadmin(t *testing.T) {
	assert.NoError(t, access.RequireSuperadmin(&entity.User{Role: entity.RoleSuperadmin}))
	for _, r := range []entity.Role{entity.RoleUser, entity.RoleRequestedForAdmin, entity.RoleAdmin} {
		err := access.RequireSuperadmin(&entity.User{Role: r})
		require.Error(t, err, r)
		assert.True(t, errors.Is(err, domain.ErrAuthorizationDenied))
		assert.Equal(t, "Only superadmin has access to this resource.", err.Error())
	}
}
