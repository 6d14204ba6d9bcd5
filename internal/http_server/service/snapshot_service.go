// Package service
package service

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/operation"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/school"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type SnapshotService struct {
	logger            log.LoggerInterface
	snapshot          *school.Snapshot
	snapshotOperation operation.SnapshotOperationInterface
}

func NewSnapshotService(
	logger log.LoggerInterface,
	snapshot *school.Snapshot,
	snapshotOperation operation.SnapshotOperationInterface,
) *SnapshotService {
	return &SnapshotService{
		logger:            logger,
		snapshot:          snapshot,
		snapshotOperation: snapshotOperation,
	}
}

func (snapshotService *SnapshotService) CurrentSnapshot(_ *RequestCurrentSnapshot) *ApiResponse[ResponseCurrentSnapshot] {
	if snapshotService.snapshot == nil {
		return NewApiResponse[ResponseCurrentSnapshot](&ErrSnapshotNotReady, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetSnapshot, Unsatisfied, (*ResponseCurrentSnapshot)(snapshotService.snapshot))
}

func (snapshotService *SnapshotService) GetRuns(req *RequestGetRuns) *ApiResponse[ResponseGetRuns] {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}
	runs, total, err := snapshotService.snapshotOperation.GetRuns(req.Page, req.PageSize)
	if err != nil {
		snapshotService.logger.ErrorF("SnapshotService.GetRuns database error: %v", err)
		return NewApiResponse[ResponseGetRuns](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetRuns, Unsatisfied, &ResponseGetRuns{Items: runs, Total: total})
}

func (snapshotService *SnapshotService) GetRunDetail(req *RequestRunDetail) *ApiResponse[ResponseRunDetail] {
	if req.RunId == "" {
		return NewApiResponse[ResponseRunDetail](&ErrLackParam, Unsatisfied, nil)
	}
	run, res := CallDBFuncAndCheckError[operation.SnapshotRun, ResponseRunDetail](
		func() (*operation.SnapshotRun, error) { return snapshotService.snapshotOperation.GetRunByRunId(req.RunId) })
	if res != nil {
		return res
	}
	persons, err := snapshotService.snapshotOperation.GetRunPersons(run)
	if err != nil {
		snapshotService.logger.ErrorF("SnapshotService.GetRunDetail database error: %v", err)
		return NewApiResponse[ResponseRunDetail](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetRunDetail, Unsatisfied, &ResponseRunDetail{Run: run, Persons: persons})
}

func (snapshotService *SnapshotService) GetRunWarnings(req *RequestRunWarnings) *ApiResponse[ResponseRunWarnings] {
	if req.RunId == "" {
		return NewApiResponse[ResponseRunWarnings](&ErrLackParam, Unsatisfied, nil)
	}
	run, res := CallDBFuncAndCheckError[operation.SnapshotRun, ResponseRunWarnings](
		func() (*operation.SnapshotRun, error) { return snapshotService.snapshotOperation.GetRunByRunId(req.RunId) })
	if res != nil {
		return res
	}
	warnings, err := snapshotService.snapshotOperation.GetRunWarnings(run)
	if err != nil {
		snapshotService.logger.ErrorF("SnapshotService.GetRunWarnings database error: %v", err)
		return NewApiResponse[ResponseRunWarnings](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetRunWarnings, Unsatisfied, &ResponseRunWarnings{Warnings: warnings})
}
