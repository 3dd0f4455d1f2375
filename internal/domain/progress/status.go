package progress

// Status is the derived watching state of a series for one user. It is
// recomputed from the ledger on every read and never persisted, so it cannot
// drift from the underlying records.
type Status string

const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusFinished   Status = "Finished"
)

// StatusFor derives the watching status from episode counts. Defined for
// every (total, watched) pair; a series with no episodes is ToDo.
func StatusFor(total, watched int) Status {
	switch {
	case watched == 0:
		return StatusToDo
	case total > 0 && watched >= total:
		return StatusFinished
	default:
		return StatusInProgress
	}
}
