package studydata

import "errors"

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidPatch indicates a patch document could not be parsed.
var ErrInvalidPatch = errors.New("invalid patch document")
