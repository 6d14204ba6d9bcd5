// Package service
package service

// ExportInfo 快照导出文件的存储信息
type ExportInfo struct {
	FileName   string // 文件名
	FilePath   string // 本地存储路径
	RemotePath string // 远程存储路径, 仅云存储时有效
}

type ExportStoreInterface interface {
	// SaveSnapshotFile 保存一次运行导出的快照文件, 当err为nil时返回值info有效
	SaveSnapshotFile(runId string, payload []byte) (info *ExportInfo, err error)
}
