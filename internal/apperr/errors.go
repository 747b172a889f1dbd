package apperr

import "errors"

var (
	ErrUsage          = errors.New("usage: jucer2cmake <jucer_project_file> <Reprojucer.cmake_file>")
	ErrInvalidProject = errors.New("not a valid Jucer project")
)
