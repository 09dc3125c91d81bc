package usecase

import (
	"context"
	"time"

	"daynix/internal/planner"
)

// ExportBackup snapshots tasks, preferences and settings into the archive
// shape and records the backup time.
func (uc *implUseCase) ExportBackup(ctx context.Context, now time.Time) (planner.Backup, error) {
	tasks, err := uc.repo.ListTasks(ctx, listAll())
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportBackup ListTasks: %v", err)
		return planner.Backup{}, err
	}
	prefs, err := uc.GetPreferences(ctx)
	if err != nil {
		return planner.Backup{}, err
	}
	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportBackup GetSettings: %v", err)
		return planner.Backup{}, err
	}

	settings.LastBackup = &now
	if err := uc.repo.SaveSettings(ctx, settings); err != nil {
		uc.l.Errorf(ctx, "uc.ExportBackup SaveSettings: %v", err)
		return planner.Backup{}, err
	}

	return planner.Backup{
		Tasks:       tasks,
		Preferences: prefs,
		Settings:    settings,
		ExportDate:  now,
		Version:     backupVersion,
	}, nil
}

// ImportBackup merges a backup into the store: tasks merge by id with
// existing records winning, preferences are restored from the backup, and
// settings merge while keeping the current backup location.
func (uc *implUseCase) ImportBackup(ctx context.Context, b planner.Backup) (planner.ImportOutput, error) {
	if b.Version == "" {
		return planner.ImportOutput{}, planner.ErrInvalidBackup
	}

	var out planner.ImportOutput

	if len(b.Tasks) > 0 {
		existing, err := uc.repo.ListTasks(ctx, listAll())
		if err != nil {
			uc.l.Errorf(ctx, "uc.ImportBackup ListTasks: %v", err)
			return out, err
		}
		seen := make(map[string]struct{}, len(existing))
		for _, t := range existing {
			seen[t.ID] = struct{}{}
		}
		merged := existing
		for _, t := range b.Tasks {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			t.Normalize()
			merged = append(merged, t)
			out.TasksAdded++
		}
		if out.TasksAdded > 0 {
			if err := uc.repo.ReplaceAllTasks(ctx, merged); err != nil {
				uc.l.Errorf(ctx, "uc.ImportBackup ReplaceAllTasks: %v", err)
				return out, err
			}
		}
	}

	if b.Preferences.WakeUpTime != "" {
		if err := uc.repo.SavePreferences(ctx, b.Preferences); err != nil {
			uc.l.Errorf(ctx, "uc.ImportBackup SavePreferences: %v", err)
			return out, err
		}
	}

	current, err := uc.repo.GetSettings(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportBackup GetSettings: %v", err)
		return out, err
	}
	restored := b.Settings
	if current.BackupLocation != "" {
		restored.BackupLocation = current.BackupLocation
	}
	if err := uc.repo.SaveSettings(ctx, restored); err != nil {
		uc.l.Errorf(ctx, "uc.ImportBackup SaveSettings: %v", err)
		return out, err
	}

	return out, nil
}
