package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

func TestRequestAdminAccess_FlujoCompleto(t *testing.T) {
	ctx := context.Background()
	users := openStore(t).Users()
	uc := usecase.NewUserUseCase(users)
	u := seedUser(t, users, "test@example.com", entity.RoleUser)

	out, err := uc.RequestAdminAccess(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "Your request is considered, superadmin will authorize you ", out.Message)

	stored, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRequestedForAdmin, stored.Role)

	want := "Already requested, you can further contact superadmin with your  user id = " + u.ID + " "
	for i := 0; i < 3; i++ {
		out, err = uc.RequestAdminAccess(ctx, stored)
		require.NoError(t, err)
		assert.Equal(t, want, out.Message)
	}
	stored, err = users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRequestedForAdmin, stored.Role)
}

func TestRequestAdminAccess_AdminNoCambia(t *testing.T) {
	ctx := context.Background()
	users := openStore(t).Users()
	uc := usecase.NewUserUseCase(users)
	admin := seedUser(t, users, "admin@example.com", entity.RoleAdmin)

	out, err := uc.RequestAdminAccess(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, "Already given admin access.", out.Message)

	stored, err := users.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
}

func TestListAdminRequests(t *testing.T) {
	ctx := context.Background()
	users := openStore(t).Users()
	uc := usecase.NewUserUseCase(users)
	super := seedUser(t, users, "superadmin@example.com", entity.RoleSuperadmin)

	list, err := uc.ListAdminRequests(ctx, super)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	r1 := seedUser(t, users, "r1@example.com", entity.RoleRequestedForAdmin)
	seedUser(t, users, "u1@example.com", entity.RoleUser)

	list, err = uc.ListAdminRequests(ctx, super)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, r1.ID, list[0].ID)
	assert.Equal(t, "requested_for_admin", list[0].Role)

	_, err = uc.ListAdminRequests(ctx, r1)
	assert.True(t, errors.Is(err, domain.ErrAuthorizationDenied))
}

func TestApproveAdminRequests_TodoONada(t *testing.T) {
	ctx := context.Background()
	users := openStore(t).Users()
	uc := usecase.NewUserUseCase(users)
	super := seedUser(t, users, "superadmin@gmail.com", entity.RoleSuperadmin)
	r1 := seedUser(t, users, "r1@example.com", entity.RoleRequestedForAdmin)
	r2 := seedUser(t, users, "r2@example.com", entity.RoleRequestedForAdmin)
	r3 := seedUser(t, users, "r3@example.com", entity.RoleRequestedForAdmin)
	admin := seedUser(t, users, "admin@example.com", entity.RoleAdmin)

	raw := strings.Join([]string{r1.ID, r2.ID, r3.ID, admin.ID}, ",")
	out, err := uc.ApproveAdminRequests(ctx, super, raw)
	require.NoError(t, err)
	assert.Equal(t, "Given admin access to users with id "+strings.Join([]string{r1.ID, r2.ID, r3.ID}, ","), out.Message)

	for _, id := range []string{r1.ID, r2.ID, r3.ID, admin.ID} {
		u, err := users.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, u.Role)
	}
}

func TestApproveAdminRequests_SinCoincidenciasRepiteEntrada(t *testing.T) {
	ctx := context.Background()
	users := openStore(t).Users()
	uc := usecase.NewUserUseCase(users)
	super := seedUser(t, users, "superadmin@gmail.com", entity.RoleSuperadmin)
	u1 := seedUser(t, users, "u1@example.com", entity.RoleUser)
	u2 := seedUser(t, users, "u2@example.com", entity.RoleUser)

	raw := u1.ID + ", " + u2.ID + ",no-es-uuid"
	out, err := uc.ApproveAdminRequests(ctx, super, raw)
	require.NoError(t, err)
	assert.Equal(t, "Users with id "+raw+" had not requested for admin access or are already admin.", out.Message)

	for _, id := range []string{u1.ID, u2.ID} {
		u, err := users.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, u.Role)
	}

	out, err = uc.ApproveAdminRequests(ctx, super, "")
	require.NoError(t, err)
	assert.Equal(t, "Users with id  had not requested for admin access or are already admin.", out.Message)
}

func TestApproveAdminRequests_SoloSuperadmin(t *testing.T) {
	ctx := context.Background()
	users := openStore(t).Users()
	uc := usecase.NewUserUseCase(users)
	admin := seedUser(t, users, "admin@example.com", entity.RoleAdmin)
	r1 := seedUser(t, users, "r1@example.com", entity.RoleRequestedForAdmin)

	_, err := uc.ApproveAdminRequests(ctx, admin, r1.ID)
	require.Error(t, err)
	assert.Equal(t, "Only superadmin has access to this resource.", err.Error())

	stored, err := users.FindByID(ctx, r1.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRequestedForAdmin, stored.Role)
}
