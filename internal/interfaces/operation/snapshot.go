// Package operation
package operation

import "errors"

var (
	// ErrRunNotFound 运行记录不存在
	ErrRunNotFound = errors.New("snapshot run does not exist")
)

// SnapshotOperationInterface 运行归档操作接口定义
type SnapshotOperationInterface interface {
	// SaveRun 保存一次运行及其所有人员结果和警告, 当err为nil时保存成功
	SaveRun(run *SnapshotRun, persons []*PersonResult, warnings []*RunWarning) (err error)
	// GetLatestRun 获取最近一次运行, 当err为nil时返回值run有效
	GetLatestRun() (run *SnapshotRun, err error)
	// GetRuns 获取分页运行记录, 当err为nil时返回值runs有效, total表示数据总数目
	GetRuns(page, pageSize int) (runs []*SnapshotRun, total int64, err error)
	// GetRunByRunId 按RunId获取运行记录, 当err为nil时返回值run有效
	GetRunByRunId(runId string) (run *SnapshotRun, err error)
	// GetRunPersons 获取某次运行的全部人员结果, 当err为nil时返回值persons有效
	GetRunPersons(run *SnapshotRun) (persons []*PersonResult, err error)
	// GetRunWarnings 获取某次运行收集的警告, 当err为nil时返回值warnings有效
	GetRunWarnings(run *SnapshotRun) (warnings []*RunWarning, err error)
}
