package usecase

import (
	"context"

	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	"github.com/jhoicas/rh-admin-api/internal/domain/repository"
)

// RosterPDFGenerator puerto hacia la infraestructura de PDF.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, employees []*entity.Employee) ([]byte, error)
}

// ReportUseCase genera el reporte PDF de la plantilla de empleados.
type ReportUseCase struct {
	employeeRepo repository.EmployeeRepository
	generator    RosterPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(employeeRepo repository.EmployeeRepository, generator RosterPDFGenerator) *ReportUseCase {
	return &ReportUseCase{employeeRepo: employeeRepo, generator: generator}
}

// EmployeeRoster lee la plantilla completa y devuelve los bytes del PDF.
func (uc *ReportUseCase) EmployeeRoster(ctx context.Context) ([]byte, error) {
	employees, err := uc.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateRosterPDF(ctx, employees)
}
