package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("auth is disabled")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrStarterNotFound    = errors.New("starter template not found")
	ErrInvalidTemplate    = errors.New("invalid template")
)
