package domains

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh block identifier.
func NewID() string {
	return uuid.NewString()
}

// NewBlock builds a default-valued block of the given type with a fresh id.
func NewBlock(kind BlockType) (Block, error) {
	id := NewID()

	switch kind {
	case TypeHeader:
		return HeaderBlock{ID: id}, nil
	case TypeTitle:
		return TitleBlock{ID: id, Level: TitleH1}, nil
	case TypeText:
		return TextBlock{ID: id}, nil
	case TypeList:
		return ListBlock{ID: id, Items: []string{}, ListType: ListBullet}, nil
	case TypeHighlight:
		return HighlightBlock{ID: id, Variant: HighlightInfo}, nil
	case TypeStats:
		return StatsBlock{ID: id, Stats: []StatItem{}}, nil
	case TypeInfoTable:
		return InfoTableBlock{ID: id, Rows: []InfoRow{}}, nil
	case TypeBadge:
		return BadgeBlock{ID: id, Variant: BadgeBlue}, nil
	case TypeButton:
		return ButtonBlock{ID: id, Variant: ButtonPrimary}, nil
	case TypeImage:
		return ImageBlock{ID: id}, nil
	case TypeDivider:
		return DividerBlock{ID: id}, nil
	case TypeSpacer:
		return SpacerBlock{ID: id, Height: SpacerDefaultHeight}, nil
	case TypeFooter:
		return FooterBlock{ID: id}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, kind)
	}
}

// WithID returns a copy of b carrying the given identifier.
func WithID(b Block, id string) Block {
	switch v := b.(type) {
	case HeaderBlock:
		v.ID = id
		return v
	case TitleBlock:
		v.ID = id
		return v
	case TextBlock:
		v.ID = id
		return v
	case ListBlock:
		v.ID = id
		return v
	case HighlightBlock:
		v.ID = id
		return v
	case StatsBlock:
		v.ID = id
		return v
	case InfoTableBlock:
		v.ID = id
		return v
	case BadgeBlock:
		v.ID = id
		return v
	case ButtonBlock:
		v.ID = id
		return v
	case ImageBlock:
		v.ID = id
		return v
	case DividerBlock:
		v.ID = id
		return v
	case SpacerBlock:
		v.ID = id
		return v
	case FooterBlock:
		v.ID = id
		return v
	}
	return b
}

// CloneBlock deep-copies the slices a block owns so the copy can be edited
// independently.
func CloneBlock(b Block) Block {
	switch v := b.(type) {
	case ListBlock:
		if v.Items != nil {
			v.Items = append([]string{}, v.Items...)
		}
		return v
	case StatsBlock:
		if v.Stats != nil {
			v.Stats = append([]StatItem{}, v.Stats...)
		}
		return v
	case InfoTableBlock:
		if v.Rows != nil {
			v.Rows = append([]InfoRow{}, v.Rows...)
		}
		return v
	case FooterBlock:
		if v.Links != nil {
			v.Links = append([]FooterLink{}, v.Links...)
		}
		return v
	}
	return b
}

func CloneBlocks(blocks []Block) Blocks {
	if blocks == nil {
		return nil
	}
	out := make(Blocks, len(blocks))
	for i, b := range blocks {
		out[i] = CloneBlock(b)
	}
	return out
}
