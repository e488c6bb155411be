package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

func TestReadCompanies_UTF8ConCabecera(t *testing.T) {
	in := "name,location\nAcme, Bogotá\n\"Foo, Inc\",Cali\n"
	rows, err := readCompanies(strings.NewReader(in), false)
	require.NoError(t, err)
	assert.Equal(t, []dto.CreateCompanyRequest{
		{Name: "Acme", Location: "Bogotá"},
		{Name: "Foo, Inc", Location: "Cali"},
	}, rows)
}

func TestReadCompanies_Latin1(t *testing.T) {
	enc, err := charmap.ISO8859_1.NewEncoder().String("Café Ñandú,Medellín\n")
	require.NoError(t, err)

	rows, err := readCompanies(bytes.NewReader([]byte(enc)), true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café Ñandú", rows[0].Name)
	assert.Equal(t, "Medellín", rows[0].Location)
}

func TestReadCompanies_ColumnasInsuficientes(t *testing.T) {
	_, err := readCompanies(strings.NewReader("Acme,Bogotá\nSolo\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 2")
}

func TestImportCompanies_OmiteDuplicadosEIncompletas(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer store.Close()

	caller := &entity.User{ID: "00000000-0000-0000-0000-000000000001", Role: entity.RoleSuperadmin}
	uc := usecase.NewCompanyUseCase(store.Companies())
	rows := []dto.CreateCompanyRequest{
		{Name: "Acme", Location: "Bogotá"},
		{Name: "Acme", Location: "Bogotá"},
		{Name: "Acme", Location: "Cali"},
		{Name: "SinUbicacion"},
	}

	res, err := importCompanies(context.Background(), uc, caller, rows, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, importResult{Created: 2, Skipped: 2}, res)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestImportCompanies_CallerSinPermisoCorta(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer store.Close()

	caller := &entity.User{Role: entity.RoleUser}
	res, err := importCompanies(context.Background(), usecase.NewCompanyUseCase(store.Companies()), caller,
		[]dto.CreateCompanyRequest{{Name: "Acme", Location: "Bogotá"}}, logger.Nop())
	require.Error(t, err)
	assert.Zero(t, res.Created)
}
