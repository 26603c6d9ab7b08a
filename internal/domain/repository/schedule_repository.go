package repository

import (
	"context"

	"smart-clinic-gateway/internal/domain/entity"
)

// ScheduleRepository fetches and manages doctor schedules on the clinic backend.
type ScheduleRepository interface {
	FindByDoctorID(ctx context.Context, doctorID int) ([]entity.ScheduleEntry, error)
	Create(ctx context.Context, token string, entry *entity.ScheduleEntry) (*entity.ScheduleEntry, error)
}
