// Package service
package service

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/operation"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/school"
)

type SnapshotServiceInterface interface {
	// CurrentSnapshot 获取内存中最新生成的排班快照
	CurrentSnapshot(req *RequestCurrentSnapshot) *ApiResponse[ResponseCurrentSnapshot]
	// GetRuns 分页获取历史运行记录
	GetRuns(req *RequestGetRuns) *ApiResponse[ResponseGetRuns]
	// GetRunDetail 获取单次运行的归档详情
	GetRunDetail(req *RequestRunDetail) *ApiResponse[ResponseRunDetail]
	// GetRunWarnings 获取单次运行收集的数据质量警告
	GetRunWarnings(req *RequestRunWarnings) *ApiResponse[ResponseRunWarnings]
}

type RequestCurrentSnapshot struct {
}

type ResponseCurrentSnapshot school.Snapshot

type RequestGetRuns struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

type ResponseGetRuns struct {
	Items []*operation.SnapshotRun `json:"items"`
	Total int64                    `json:"total"`
}

type RequestRunDetail struct {
	RunId string `param:"id"`
}

type ResponseRunDetail struct {
	Run     *operation.SnapshotRun    `json:"run"`
	Persons []*operation.PersonResult `json:"persons"`
}

type RequestRunWarnings struct {
	RunId string `param:"id"`
}

type ResponseRunWarnings struct {
	Warnings []*operation.RunWarning `json:"warnings"`
}
