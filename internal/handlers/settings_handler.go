package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gimnasioapp/gym-api/internal/authz"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	usecase "github.com/gimnasioapp/gym-api/internal/usecase/notification"
)

type SettingsHandler struct {
	settings *usecase.Settings
}

func NewSettingsHandler(settings *usecase.Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// --------- Handlers ---------

func (h *SettingsHandler) MySettings(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context(), authz.UserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Error al cargar preferencias.")
		return
	}

	httpresp.OK(c, s)
}

func (h *SettingsHandler) UpdateMySettings(c *gin.Context) {
	var req usecase.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	s, err := h.settings.Update(c.Request.Context(), authz.UserID(c), req)
	if err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Error al actualizar preferencias.")
		return
	}

	httpresp.OK(c, s)
}
