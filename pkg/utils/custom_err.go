package utils

import "errors"

var (
	ErrRegionNotFound       = errors.New("region not found")
	ErrHotelNotFound        = errors.New("hotel not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrOneDayTourNotFound   = errors.New("one-day tour not found")
	ErrMultiDayTourNotFound = errors.New("multi-day tour not found")
	ErrAutorTourNotFound    = errors.New("author tour not found")
	ErrFileNotFound         = errors.New("file not found")

	ErrRegionReferenceInvalid = errors.New("region reference invalid")
	ErrRegionInUse            = errors.New("region has related records")
	ErrInvalidOrderPayload    = errors.New("invalid order payload")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrDatabaseError          = errors.New("database error")
	ErrStorageError           = errors.New("storage error")
)
