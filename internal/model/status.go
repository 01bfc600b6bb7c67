package model

// FetchStatus represents the progress of the headline fetch for a session
type FetchStatus string

const (
	// FetchStatusNotStarted means no fetch has been spawned yet
	FetchStatusNotStarted FetchStatus = "NotStarted"

	// FetchStatusFetching means a fetch was spawned and its messages are still arriving
	FetchStatusFetching FetchStatus = "Fetching"

	// FetchStatusDone means every record was delivered
	FetchStatusDone FetchStatus = "Done"

	// FetchStatusFailed means the fetch ended with an error
	FetchStatusFailed FetchStatus = "Failed"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true while records may still arrive
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusFetching
}

// IsFinished returns true if the fetch reached a terminal state (done or failed)
func (fs FetchStatus) IsFinished() bool {
	return fs == FetchStatusDone || fs == FetchStatusFailed
}
