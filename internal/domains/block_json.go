package domains

import (
	"encoding/json"
	"fmt"
)

// Blocks is an ordered block list that knows how to decode its variants.
type Blocks []Block

func (bs *Blocks) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*bs = nil
		return nil
	}
	out := make(Blocks, 0, len(raw))
	for i, item := range raw {
		block, err := DecodeBlock(item)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, block)
	}
	*bs = out
	return nil
}

// DecodeBlock reads one flat {"id":…,"type":…,…} object into its variant.
func DecodeBlock(data []byte) (Block, error) {
	var head struct {
		Type BlockType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case TypeHeader:
		return decodeAs[HeaderBlock](data)
	case TypeTitle:
		return decodeAs[TitleBlock](data)
	case TypeText:
		return decodeAs[TextBlock](data)
	case TypeList:
		return decodeAs[ListBlock](data)
	case TypeHighlight:
		return decodeAs[HighlightBlock](data)
	case TypeStats:
		return decodeAs[StatsBlock](data)
	case TypeInfoTable:
		return decodeAs[InfoTableBlock](data)
	case TypeBadge:
		return decodeAs[BadgeBlock](data)
	case TypeButton:
		return decodeAs[ButtonBlock](data)
	case TypeImage:
		return decodeAs[ImageBlock](data)
	case TypeDivider:
		return decodeAs[DividerBlock](data)
	case TypeSpacer:
		return decodeAs[SpacerBlock](data)
	case TypeFooter:
		return decodeAs[FooterBlock](data)
	case "":
		return nil, ErrMissingBlockType
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, head.Type)
	}
}

func decodeAs[T Block](data []byte) (Block, error) {
	var b T
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeBlock is json.Marshal for a single block; the discriminant is always
// written first.
func EncodeBlock(b Block) ([]byte, error) {
	if b == nil {
		return nil, ErrNilBlock
	}
	return json.Marshal(b)
}

func (b HeaderBlock) MarshalJSON() ([]byte, error) {
	type alias HeaderBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeHeader, alias(b)})
}

func (b TitleBlock) MarshalJSON() ([]byte, error) {
	type alias TitleBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeTitle, alias(b)})
}

func (b TextBlock) MarshalJSON() ([]byte, error) {
	type alias TextBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeText, alias(b)})
}

func (b ListBlock) MarshalJSON() ([]byte, error) {
	type alias ListBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeList, alias(b)})
}

func (b HighlightBlock) MarshalJSON() ([]byte, error) {
	type alias HighlightBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeHighlight, alias(b)})
}

func (b StatsBlock) MarshalJSON() ([]byte, error) {
	type alias StatsBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeStats, alias(b)})
}

func (b InfoTableBlock) MarshalJSON() ([]byte, error) {
	type alias InfoTableBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeInfoTable, alias(b)})
}

func (b BadgeBlock) MarshalJSON() ([]byte, error) {
	type alias BadgeBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeBadge, alias(b)})
}

func (b ButtonBlock) MarshalJSON() ([]byte, error) {
	type alias ButtonBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeButton, alias(b)})
}

func (b ImageBlock) MarshalJSON() ([]byte, error) {
	type alias ImageBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeImage, alias(b)})
}

func (b DividerBlock) MarshalJSON() ([]byte, error) {
	type alias DividerBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeDivider, alias(b)})
}

func (b SpacerBlock) MarshalJSON() ([]byte, error) {
	type alias SpacerBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeSpacer, alias(b)})
}

func (b FooterBlock) MarshalJSON() ([]byte, error) {
	type alias FooterBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		alias
	}{TypeFooter, alias(b)})
}
