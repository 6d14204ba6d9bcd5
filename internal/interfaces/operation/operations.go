// Package operation
package operation

type DatabaseOperations struct {
	snapshotOperation SnapshotOperationInterface
}

func NewDatabaseOperations(
	snapshotOperation SnapshotOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		snapshotOperation: snapshotOperation,
	}
}

func (db *DatabaseOperations) SnapshotOperation() SnapshotOperationInterface {
	return db.snapshotOperation
}
