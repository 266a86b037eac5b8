package catalog

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain"
	catalogdomain "github.com/BruksfildServices01/barberias/internal/domain/catalog"
	tenantdomain "github.com/BruksfildServices01/barberias/internal/domain/tenant"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/infra/storage"
	"github.com/BruksfildServices01/barberias/internal/media"
	"github.com/BruksfildServices01/barberias/internal/models"
)

var (
	ErrMediaDisabled = httperr.New(
		httperr.KindUnavailable,
		"media_disabled",
		"La carga de imágenes no está habilitada.",
	)
	ErrImageTooLarge   = httperr.BadRequestErr("imagen_muy_grande", "La imagen supera el tamaño permitido.")
	ErrImageUnreadable = httperr.BadRequestErr("imagen_invalida", "Formato de imagen no soportado.")
	ErrLogoForbidden   = httperr.ForbiddenErr("forbidden", "Solo un administrador puede cambiar el logo.")
)

// MediaStore converts uploads to WebP and keeps them in object storage. A nil
// *MediaStore means uploads are disabled.
type MediaStore struct {
	processor *media.Processor
	objects   storage.ObjectStore
	log       *zap.Logger
}

func NewMediaStore(
	processor *media.Processor,
	objects storage.ObjectStore,
	log *zap.Logger,
) *MediaStore {
	return &MediaStore{
		processor: processor,
		objects:   objects,
		log:       log,
	}
}

func (m *MediaStore) put(ctx context.Context, key string, r io.Reader) (string, error) {
	if m == nil {
		return "", ErrMediaDisabled
	}

	body, err := m.processor.ToWebP(r)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrTooLarge):
			return "", ErrImageTooLarge
		case errors.Is(err, media.ErrUnsupported):
			return "", ErrImageUnreadable
		}
		return "", err
	}

	return m.objects.Put(ctx, key, media.ContentType, body)
}

// Forget deletes the object behind url when it belongs to this store.
// Failures are only logged.
func (m *MediaStore) Forget(ctx context.Context, url string) {
	if m == nil || url == "" {
		return
	}
	key := m.objects.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := m.objects.Delete(ctx, key); err != nil {
		m.log.Warn("media delete failed", zap.String("key", key), zap.Error(err))
	}
}

// ======================================================
// SERVICE IMAGE
// ======================================================

type UploadServiceImage struct {
	services catalogdomain.Repository
	media    *MediaStore
	audit    audit.Sink
}

func NewUploadServiceImage(
	services catalogdomain.Repository,
	media *MediaStore,
	audit audit.Sink,
) *UploadServiceImage {
	return &UploadServiceImage{
		services: services,
		media:    media,
		audit:    audit,
	}
}

func (uc *UploadServiceImage) Execute(
	ctx context.Context,
	actor auth.Identity,
	id uint,
	r io.Reader,
) (*models.Service, error) {

	if uc.media == nil {
		return nil, ErrMediaDisabled
	}

	svc, err := ownedService(ctx, uc.services, actor, id)
	if err != nil {
		return nil, err
	}

	url, err := uc.media.put(ctx, storage.ServiceImageKey(svc.TenantID, svc.ID), r)
	if err != nil {
		return nil, err
	}

	previous := svc.ImageURL
	svc.ImageURL = url
	if err := uc.services.Update(ctx, svc); err != nil {
		uc.media.Forget(ctx, url)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	uc.media.Forget(ctx, previous)

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionServiceUpdated,
		Entity:   "servicio",
		EntityID: &svc.ID,
		Metadata: map[string]any{"imagen_url": url},
	})

	return svc, nil
}

// ======================================================
// TENANT LOGO
// ======================================================

type UploadLogo struct {
	tenants tenantdomain.Repository
	media   *MediaStore
	audit   audit.Sink
}

func NewUploadLogo(
	tenants tenantdomain.Repository,
	media *MediaStore,
	audit audit.Sink,
) *UploadLogo {
	return &UploadLogo{
		tenants: tenants,
		media:   media,
		audit:   audit,
	}
}

func (uc *UploadLogo) Execute(
	ctx context.Context,
	actor auth.Identity,
	r io.Reader,
) (*models.Tenant, error) {

	if !actor.IsAdmin() {
		return nil, ErrLogoForbidden
	}
	if uc.media == nil {
		return nil, ErrMediaDisabled
	}

	t, err := uc.tenants.GetByID(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}

	url, err := uc.media.put(ctx, storage.LogoKey(t.ID), r)
	if err != nil {
		return nil, err
	}

	previous := t.LogoURL
	t.LogoURL = url
	if err := uc.tenants.Save(ctx, t); err != nil {
		uc.media.Forget(ctx, url)
		return nil, err
	}
	uc.media.Forget(ctx, previous)

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionLogoUpdated,
		Entity:   "barberia",
		EntityID: &t.ID,
	})

	return t, nil
}
