package usecase

import (
	"context"

	"daynix/internal/model"
)

// GetPreferences loads the singleton, supplying defaults when absent.
func (uc *implUseCase) GetPreferences(ctx context.Context) (model.Preferences, error) {
	prefs, found, err := uc.repo.GetPreferences(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetPreferences: %v", err)
		return model.Preferences{}, err
	}
	if !found {
		return model.DefaultPreferences(), nil
	}
	return prefs, nil
}

// SavePreferences replaces the singleton wholesale, refreshing the derived
// sleep target from the sleep/wake window.
func (uc *implUseCase) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	prefs.SleepTargetHours = prefs.SleepTarget()
	if err := uc.repo.SavePreferences(ctx, prefs); err != nil {
		uc.l.Errorf(ctx, "uc.SavePreferences: %v", err)
		return err
	}
	return nil
}
