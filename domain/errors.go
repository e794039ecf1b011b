package domain

import "errors"

var (
	ErrorInvalidFieldType        = errors.New("invalid field type")
	ErrorKeyboardNotFound        = errors.New("keyboard not found")
	ErrorKeyboardPageOutOfRange  = errors.New("keyboard page out of range")
	ErrorKeyboardInfoIsEmpty     = errors.New("keyboard info is empty")
	ErrorLocalizationFileInvalid = errors.New("localization file invalid")
	ErrorFailedSaveToCache       = errors.New("failed to save to cache")
)
