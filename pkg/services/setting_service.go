package services

import (
	"context"
	"fmt"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/globalsetting"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// SettingService reads and writes singleton state in the
// global_settings table. Only the driving mode lives there today.
type SettingService struct {
	client *ent.Client
}

// NewSettingService creates a new SettingService.
func NewSettingService(client *ent.Client) *SettingService {
	return &SettingService{client: client}
}

// GetDrivingMode returns the current driving mode, defaulting to auto
// when the row is missing or holds garbage.
func (s *SettingService) GetDrivingMode(ctx context.Context) (models.DrivingMode, error) {
	row, err := s.client.GlobalSetting.Query().
		Where(globalsetting.KeyEQ(models.SettingDrivingMode)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return models.DrivingModeAuto, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read driving mode: %w", err)
	}
	mode := models.DrivingMode(row.Value)
	if !mode.Valid() {
		return models.DrivingModeAuto, nil
	}
	return mode, nil
}

// SetDrivingMode stores the driving mode.
func (s *SettingService) SetDrivingMode(httpCtx context.Context, mode models.DrivingMode) error {
	if !mode.Valid() {
		return NewValidationError("mode", fmt.Sprintf("must be auto or manual, got '%s'", mode))
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.GlobalSetting.Query().
		Where(globalsetting.KeyEQ(models.SettingDrivingMode)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err := s.client.GlobalSetting.Create().
			SetKey(models.SettingDrivingMode).
			SetValue(string(mode)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to store driving mode: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read driving mode: %w", err)
	}
	if _, err := row.Update().SetValue(string(mode)).Save(ctx); err != nil {
		return fmt.Errorf("failed to update driving mode: %w", err)
	}
	return nil
}
