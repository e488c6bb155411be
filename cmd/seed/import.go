package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// importResult conteo de filas creadas y omitidas (duplicadas o incompletas).
type importResult struct {
	Created int
	Skipped int
}

// readCompanies lee filas name,location. Una cabecera "name,location" en la primera fila se ignora.
func readCompanies(r io.Reader, latin1 bool) ([]dto.CreateCompanyRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []dto.CreateCompanyRequest
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperaban 2 columnas, hay %d", line, len(rec))
		}
		name, location := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if line == 1 && strings.EqualFold(name, "name") && strings.EqualFold(location, "location") {
			continue
		}
		out = append(out, dto.CreateCompanyRequest{Name: name, Location: location})
	}
}

// importCompanies crea cada empresa como caller. Duplicados y filas incompletas se omiten;
// cualquier otro error corta la importación.
func importCompanies(ctx context.Context, uc *usecase.CompanyUseCase, caller *entity.User, rows []dto.CreateCompanyRequest, log *logger.Logger) (importResult, error) {
	var res importResult
	for _, row := range rows {
		_, err := uc.Create(ctx, caller, row)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrValidation):
			res.Skipped++
			log.Warn().Str("name", row.Name).Str("location", row.Location).Err(err).Msg("empresa omitida")
		default:
			return res, fmt.Errorf("crear %q: %w", row.Name, err)
		}
	}
	return res, nil
}
