package service

import (
	"context"
	"fmt"
	"strconv"

	"nolij-demo-be/internal/constant"
	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/entity"
	"nolij-demo-be/internal/repository/contract"
)

type IPreferenceService interface {
	Get(ctx context.Context) (*dto.PreferencesResponse, error)
	Update(ctx context.Context, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error)
}

type preferenceService struct {
	preferenceRepo contract.PreferenceRepository
}

func NewPreferenceService(preferenceRepo contract.PreferenceRepository) IPreferenceService {
	return &preferenceService{preferenceRepo: preferenceRepo}
}

func (s *preferenceService) Get(ctx context.Context) (*dto.PreferencesResponse, error) {
	resp := &dto.PreferencesResponse{
		HideWelcomeModal: false,
		DefaultPersona:   entity.PersonaProfessional,
	}

	if v, found, err := s.preferenceRepo.Get(ctx, constant.PrefHideWelcomeModal); err != nil {
		return nil, fmt.Errorf("read preference: %w", err)
	} else if found {
		resp.HideWelcomeModal, _ = strconv.ParseBool(v)
	}

	if v, found, err := s.preferenceRepo.Get(ctx, constant.PrefDefaultPersona); err != nil {
		return nil, fmt.Errorf("read preference: %w", err)
	} else if found {
		if p := entity.Persona(v); p == entity.PersonaProfessional || p == entity.PersonaConversational {
			resp.DefaultPersona = p
		}
	}

	return resp, nil
}

func (s *preferenceService) Update(ctx context.Context, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	if req.HideWelcomeModal != nil {
		if err := s.preferenceRepo.Set(ctx, constant.PrefHideWelcomeModal, strconv.FormatBool(*req.HideWelcomeModal)); err != nil {
			return nil, fmt.Errorf("write preference: %w", err)
		}
	}
	if req.DefaultPersona != nil {
		if err := s.preferenceRepo.Set(ctx, constant.PrefDefaultPersona, string(*req.DefaultPersona)); err != nil {
			return nil, fmt.Errorf("write preference: %w", err)
		}
	}
	return s.Get(ctx)
}
