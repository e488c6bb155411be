package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/access"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

const msgCompanyIncomplete = "Name and location cannot be blank."

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	now  func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, now: time.Now}
}

// Create crea una empresa. La autorización se evalúa antes que la validación de campos.
// El duplicado (name, location) lo detecta el store como domain.ErrConflict.
func (uc *CompanyUseCase) Create(ctx context.Context, caller *entity.User, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := access.CanCreateCompany(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, domain.NewError(domain.ErrValidation, msgCompanyIncomplete)
	}
	now := uc.now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByName obtiene una empresa por nombre exacto.
func (uc *CompanyUseCase) GetByName(ctx context.Context, name string) (*dto.CompanyResponse, error) {
	if name == "" {
		return nil, domain.NewError(domain.ErrValidation, "Please provide name to get company")
	}
	company, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NewError(domain.ErrNotFound, "No company with name "+name)
	}
	return entityToCompanyResponse(company), nil
}

// List devuelve la proyección id/name/location de todas las empresas (lista vacía si no hay).
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanySummary, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{ID: c.ID, Name: c.Name, Location: c.Location})
	}
	return items, nil
}

// Search busca empresas cuyo nombre contiene key (sensible a mayúsculas).
func (uc *CompanyUseCase) Search(ctx context.Context, key string) ([]dto.CompanyResponse, error) {
	if key == "" {
		return nil, domain.NewError(domain.ErrValidation, "Please provide search-key to search companies")
	}
	list, err := uc.repo.SearchByName(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NewError(domain.ErrNotFound, "No company with keyword "+key)
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
