package storage

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrTemplateExist = errors.New("template already exists")
)
