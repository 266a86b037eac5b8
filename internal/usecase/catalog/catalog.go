package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	catalogdomain "github.com/BruksfildServices01/barberias/internal/domain/catalog"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
)

var (
	ErrServiceNotFound  = httperr.NotFoundErr("servicio_no_encontrado", "Servicio no encontrado.")
	ErrServiceForbidden = httperr.ForbiddenErr("forbidden", "No tienes permisos para modificar este servicio.")
	ErrServiceName      = httperr.BadRequestErr("nombre_requerido", "El nombre del servicio es requerido.")
)

// ======================================================
// PUBLIC
// ======================================================

type ListBarbers struct {
	barbers barberdomain.Repository
}

func NewListBarbers(barbers barberdomain.Repository) *ListBarbers {
	return &ListBarbers{barbers: barbers}
}

func (uc *ListBarbers) Execute(ctx context.Context, tenantID uint) ([]models.Barber, error) {
	return uc.barbers.ListActive(ctx, tenantID)
}

type ListServices struct {
	barbers  barberdomain.Repository
	services catalogdomain.Repository
}

func NewListServices(
	barbers barberdomain.Repository,
	services catalogdomain.Repository,
) *ListServices {
	return &ListServices{
		barbers:  barbers,
		services: services,
	}
}

func (uc *ListServices) Execute(
	ctx context.Context,
	tenantID uint,
	barberID uint,
) ([]models.Service, error) {

	if _, err := uc.barbers.Get(ctx, tenantID, barberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, barberdomain.ErrNotFound
		}
		return nil, err
	}
	return uc.services.ListActiveByBarber(ctx, tenantID, barberID)
}

// ======================================================
// STAFF
// ======================================================

type ServiceInput struct {
	// BarberID defaults to the acting barber when zero.
	BarberID    uint
	Name        string
	Description string
	Active      *bool
}

type CreateService struct {
	barbers  barberdomain.Repository
	services catalogdomain.Repository
	audit    audit.Sink
}

func NewCreateService(
	barbers barberdomain.Repository,
	services catalogdomain.Repository,
	audit audit.Sink,
) *CreateService {
	return &CreateService{
		barbers:  barbers,
		services: services,
		audit:    audit,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	actor auth.Identity,
	in ServiceInput,
) (*models.Service, error) {

	if in.BarberID == 0 {
		in.BarberID = actor.BarberID
	}
	if !actor.CanActOn(actor.TenantID, in.BarberID) {
		return nil, ErrServiceForbidden
	}
	if _, err := uc.barbers.Get(ctx, actor.TenantID, in.BarberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, barberdomain.ErrNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrServiceName
	}

	svc := &models.Service{
		TenantID:    actor.TenantID,
		BarberID:    in.BarberID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Active:      in.Active == nil || *in.Active,
	}
	if err := uc.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionServiceCreated,
		Entity:   "servicio",
		EntityID: &svc.ID,
	})

	return svc, nil
}

type UpdateService struct {
	services catalogdomain.Repository
	audit    audit.Sink
}

func NewUpdateService(services catalogdomain.Repository, audit audit.Sink) *UpdateService {
	return &UpdateService{
		services: services,
		audit:    audit,
	}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	actor auth.Identity,
	id uint,
	in ServiceInput,
) (*models.Service, error) {

	svc, err := ownedService(ctx, uc.services, actor, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, ErrServiceName
		}
		svc.Name = name
	}
	if in.Description != "" {
		svc.Description = strings.TrimSpace(in.Description)
	}
	if in.Active != nil {
		svc.Active = *in.Active
	}

	if err := uc.services.Update(ctx, svc); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionServiceUpdated,
		Entity:   "servicio",
		EntityID: &svc.ID,
	})

	return svc, nil
}

type DeleteService struct {
	services catalogdomain.Repository
	media    *MediaStore
	audit    audit.Sink
}

func NewDeleteService(
	services catalogdomain.Repository,
	media *MediaStore,
	audit audit.Sink,
) *DeleteService {
	return &DeleteService{
		services: services,
		media:    media,
		audit:    audit,
	}
}

func (uc *DeleteService) Execute(
	ctx context.Context,
	actor auth.Identity,
	id uint,
) error {

	svc, err := ownedService(ctx, uc.services, actor, id)
	if err != nil {
		return err
	}

	if err := uc.services.Delete(ctx, actor.TenantID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrServiceNotFound
		}
		return err
	}

	uc.media.Forget(ctx, svc.ImageURL)

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionServiceDeleted,
		Entity:   "servicio",
		EntityID: &id,
	})

	return nil
}

func ownedService(
	ctx context.Context,
	repo catalogdomain.Repository,
	actor auth.Identity,
	id uint,
) (*models.Service, error) {

	svc, err := repo.Get(ctx, actor.TenantID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !actor.CanActOn(svc.TenantID, svc.BarberID) {
		return nil, ErrServiceForbidden
	}
	return svc, nil
}
