package domains

import "errors"

var (
	ErrNilBlock          = errors.New("block is nil")
	ErrMissingBlockType  = errors.New("block type missing")
	ErrUnknownBlockType  = errors.New("unknown block type")
	ErrBlockNotFound     = errors.New("block not found")
	ErrBlockTypeChanged  = errors.New("block type cannot change on update")
	ErrDuplicateBlockID  = errors.New("duplicate block id")
	ErrEmptyBlockID      = errors.New("empty block id")
	ErrIndexOutOfRange   = errors.New("block index out of range")
	ErrTemplateNameEmpty = errors.New("template name is required")
)
