package errs

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidLink         = errors.New("invalid source link")
	ErrTrackNotFound       = errors.New("track not found in catalog")
	ErrConversionCancelled = errors.New("conversion cancelled")
	ErrAccessExpired       = errors.New("stream access expired")
	ErrDownloadFailed      = errors.New("download failed")
	ErrEmptyContent        = errors.New("stream reported empty content")
)
