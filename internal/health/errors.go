package health

import "errors"

var (
	ErrLoadFailed       = errors.New("dataset load failed")
	ErrMalformedDataset = errors.New("malformed dataset")
	ErrDuplicateDate    = errors.New("duplicate record date")
	ErrInvalidDate      = errors.New("invalid date")
	ErrUnknownPreset    = errors.New("unknown range preset")
	ErrNotLoaded        = errors.New("dataset not loaded")
)
