package database

import (
	"context"
	"errors"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type SnapshotOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewSnapshotOperation(db *gorm.DB, queryTimeout time.Duration) *SnapshotOperation {
	return &SnapshotOperation{db: db, queryTimeout: queryTimeout}
}

func (snapshotOperation *SnapshotOperation) SaveRun(run *SnapshotRun, persons []*PersonResult, warnings []*RunWarning) error {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotOperation.queryTimeout)
	defer cancel()
	return snapshotOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		for _, person := range persons {
			person.SnapshotRunID = run.ID
		}
		if len(persons) > 0 {
			if err := tx.Create(persons).Error; err != nil {
				return err
			}
		}
		for _, warning := range warnings {
			warning.SnapshotRunID = run.ID
		}
		if len(warnings) > 0 {
			if err := tx.Create(warnings).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (snapshotOperation *SnapshotOperation) GetLatestRun() (run *SnapshotRun, err error) {
	run = &SnapshotRun{}
	ctx, cancel := context.WithTimeout(context.Background(), snapshotOperation.queryTimeout)
	defer cancel()
	err = snapshotOperation.db.WithContext(ctx).
		Order("finished_at DESC").
		First(run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrRunNotFound
	}
	return
}

func (snapshotOperation *SnapshotOperation) GetRuns(page, pageSize int) (runs []*SnapshotRun, total int64, err error) {
	runs = make([]*SnapshotRun, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), snapshotOperation.queryTimeout)
	defer cancel()
	snapshotOperation.db.WithContext(ctx).Model(&SnapshotRun{}).Select("id").Count(&total)
	err = snapshotOperation.db.WithContext(ctx).
		Order("finished_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&runs).Error
	return
}

func (snapshotOperation *SnapshotOperation) GetRunByRunId(runId string) (run *SnapshotRun, err error) {
	run = &SnapshotRun{}
	ctx, cancel := context.WithTimeout(context.Background(), snapshotOperation.queryTimeout)
	defer cancel()
	err = snapshotOperation.db.WithContext(ctx).
		Where("run_id = ?", runId).
		First(run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrRunNotFound
	}
	return
}

func (snapshotOperation *SnapshotOperation) GetRunPersons(run *SnapshotRun) (persons []*PersonResult, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotOperation.queryTimeout)
	defer cancel()
	err = snapshotOperation.db.WithContext(ctx).
		Where("snapshot_run_id = ?", run.ID).
		Find(&persons).Error
	return
}

func (snapshotOperation *SnapshotOperation) GetRunWarnings(run *SnapshotRun) (warnings []*RunWarning, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotOperation.queryTimeout)
	defer cancel()
	err = snapshotOperation.db.WithContext(ctx).
		Where("snapshot_run_id = ?", run.ID).
		Find(&warnings).Error
	return
}
