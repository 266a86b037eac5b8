package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/httperr"
	ucCatalog "github.com/BruksfildServices01/barberias/internal/usecase/catalog"
)

// FormImageField is the multipart field carrying an uploaded image.
const FormImageField = "imagen"

var errImageMissing = httperr.BadRequestErr("imagen_requerida", "Debe adjuntar una imagen en el campo 'imagen'.")

type CatalogHandler struct {
	createService *ucCatalog.CreateService
	updateService *ucCatalog.UpdateService
	deleteService *ucCatalog.DeleteService
	uploadImage   *ucCatalog.UploadServiceImage
	uploadLogo    *ucCatalog.UploadLogo

	// maxBytes bounds the request body of uploads.
	maxBytes int64
	log      *zap.Logger
}

func NewCatalogHandler(
	createService *ucCatalog.CreateService,
	updateService *ucCatalog.UpdateService,
	deleteService *ucCatalog.DeleteService,
	uploadImage *ucCatalog.UploadServiceImage,
	uploadLogo *ucCatalog.UploadLogo,
	maxBytes int64,
	log *zap.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		createService: createService,
		updateService: updateService,
		deleteService: deleteService,
		uploadImage:   uploadImage,
		uploadLogo:    uploadLogo,
		maxBytes:      maxBytes,
		log:           log,
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	BarberID    uint   `json:"barbero_id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Active      *bool  `json:"activo"`
}

func (r ServiceRequest) input() ucCatalog.ServiceInput {
	return ucCatalog.ServiceInput{
		BarberID:    r.BarberID,
		Name:        r.Name,
		Description: r.Description,
		Active:      r.Active,
	}
}

// --------- Services ---------

// POST /api/servicios
func (h *CatalogHandler) CreateService(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, errInvalidRequest)
		return
	}

	svc, err := h.createService.Execute(c.Request.Context(), actor, req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// PUT /api/servicios/:id
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, errInvalidRequest)
		return
	}

	svc, err := h.updateService.Execute(c.Request.Context(), actor, id, req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DELETE /api/servicios/:id
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.deleteService.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Servicio eliminado"})
}

// --------- Media ---------

// POST /api/servicios/:id/imagen
func (h *CatalogHandler) UploadServiceImage(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	file, closeFile, err := h.formImage(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	defer closeFile()

	svc, err := h.uploadImage.Execute(c.Request.Context(), actor, id, file)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// POST /api/barberia/logo
func (h *CatalogHandler) UploadLogo(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	file, closeFile, err := h.formImage(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	defer closeFile()

	t, err := h.uploadLogo.Execute(c.Request.Context(), actor, file)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": t.ID, "logo_url": t.LogoURL})
}

// formImage opens the uploaded image, rejecting bodies over maxBytes.
func (h *CatalogHandler) formImage(c *gin.Context) (multipart.File, func(), error) {
	if h.maxBytes > 0 {
		// room for the multipart envelope
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+64<<10)
	}

	fh, err := c.FormFile(FormImageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, ucCatalog.ErrImageTooLarge
		}
		return nil, nil, errImageMissing
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return nil, nil, ucCatalog.ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
