package model

// SessionState is the user's language and currency selection.
type SessionState struct {
	Language string   `json:"language"`
	Currency Currency `json:"currency"`
}

// Status describes where the displayed price came from.
type Status string

const (
	StatusLoading         Status = "loading"
	StatusFresh           Status = "fresh"
	StatusCached          Status = "cached"
	StatusAPIDataError    Status = "api_data_error"
	StatusAPILoadingError Status = "api_loading_error"
	StatusNoData          Status = "no_data"
)

// IsError reports whether the last fetch cycle failed.
func (s Status) IsError() bool {
	switch s {
	case StatusAPIDataError, StatusAPILoadingError, StatusNoData:
		return true
	}
	return false
}
