package dto

import "nolij-demo-be/internal/entity"

type PreferencesResponse struct {
	HideWelcomeModal bool           `json:"hide_welcome_modal"`
	DefaultPersona   entity.Persona `json:"default_persona"`
}

type UpdatePreferencesRequest struct {
	HideWelcomeModal *bool           `json:"hide_welcome_modal,omitempty"`
	DefaultPersona   *entity.Persona `json:"default_persona,omitempty" validate:"omitempty,oneof=professional conversational"`
}
