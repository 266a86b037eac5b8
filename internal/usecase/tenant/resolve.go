package tenant

import (
	"context"
	"errors"
	"net"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/domain"
	tenantdomain "github.com/BruksfildServices01/barberias/internal/domain/tenant"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
)

var ErrTenantNotFound = httperr.NotFoundErr("barberia_not_found", "Barbería no encontrada.")

// ======================================================
// USE CASE
// ======================================================

type Resolve struct {
	repo     tenantdomain.Repository
	suffixes []string
	fallback bool
	log      *zap.Logger
}

func NewResolve(
	repo tenantdomain.Repository,
	suffixes []string,
	fallback bool,
	log *zap.Logger,
) *Resolve {
	return &Resolve{
		repo:     repo,
		suffixes: suffixes,
		fallback: fallback,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute picks the tenant of a request: subdomain first, then the explicit
// slug, then (when enabled) the first active tenant.
func (uc *Resolve) Execute(
	ctx context.Context,
	host string,
	slug string,
) (*models.Tenant, error) {

	// --------------------------------------------------
	// 1️⃣ Subdominio
	// --------------------------------------------------
	if label := uc.subdomain(host); label != "" {
		t, err := uc.repo.FindActiveBySlug(ctx, label)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2️⃣ Slug explícito
	// --------------------------------------------------
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug != "" {
		t, err := uc.repo.FindActiveBySlug(ctx, slug)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3️⃣ Fallback
	// --------------------------------------------------
	if !uc.fallback {
		return nil, ErrTenantNotFound
	}

	t, err := uc.repo.FirstActive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	uc.log.Warn("tenant resolved by fallback",
		zap.String("host", host),
		zap.String("slug", slug),
		zap.Uint("barberia_id", t.ID),
	)
	return t, nil
}

// subdomain returns the leading label of host when host sits under one of the
// configured multi-tenant suffixes.
func (uc *Resolve) subdomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")

	for _, suffix := range uc.suffixes {
		if suffix == "" || !strings.HasSuffix(host, "."+suffix) {
			continue
		}
		rest := strings.TrimSuffix(host, "."+suffix)
		label := rest
		if i := strings.Index(rest, "."); i >= 0 {
			label = rest[:i]
		}
		if label == "" || label == "www" {
			return ""
		}
		return label
	}
	return ""
}
