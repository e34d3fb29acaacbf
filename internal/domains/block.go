package domains

import "github.com/mhoo999/mail-maker/internal/sanitizer"

type BlockType string

const (
	TypeHeader    BlockType = "header"
	TypeTitle     BlockType = "title"
	TypeText      BlockType = "text"
	TypeList      BlockType = "list"
	TypeHighlight BlockType = "highlight"
	TypeStats     BlockType = "stats"
	TypeInfoTable BlockType = "infoTable"
	TypeBadge     BlockType = "badge"
	TypeButton    BlockType = "button"
	TypeImage     BlockType = "image"
	TypeDivider   BlockType = "divider"
	TypeSpacer    BlockType = "spacer"
	TypeFooter    BlockType = "footer"
)

// BlockTypes lists every variant in the order the editor palette offers them.
var BlockTypes = []BlockType{
	TypeHeader,
	TypeTitle,
	TypeText,
	TypeList,
	TypeHighlight,
	TypeStats,
	TypeInfoTable,
	TypeBadge,
	TypeButton,
	TypeImage,
	TypeDivider,
	TypeSpacer,
	TypeFooter,
}

func (t BlockType) Valid() bool {
	for _, known := range BlockTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Block is one content unit of an email document. The set of implementations
// is closed: only the variant types declared in this package satisfy it.
type Block interface {
	BlockID() string
	Kind() BlockType
	isBlock()
}

type TitleLevel string

const (
	TitleH1 TitleLevel = "h1"
	TitleH2 TitleLevel = "h2"
)

type ListType string

const (
	ListBullet ListType = "bullet"
	ListNumber ListType = "number"
)

type HighlightVariant string

const (
	HighlightInfo    HighlightVariant = "info"
	HighlightWarning HighlightVariant = "warning"
	HighlightSuccess HighlightVariant = "success"
	HighlightError   HighlightVariant = "error"
)

type BadgeVariant string

const (
	BadgeRed    BadgeVariant = "red"
	BadgeOrange BadgeVariant = "orange"
	BadgeBlue   BadgeVariant = "blue"
	BadgeGreen  BadgeVariant = "green"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

// Spacer height bounds offered by the editor. The model does not enforce them.
const (
	SpacerMinHeight     = 10
	SpacerMaxHeight     = 100
	SpacerDefaultHeight = 20
)

// Fields holding rich fragments: HeaderBlock.BadgeText, TextBlock.Content,
// HighlightBlock.Content, InfoRow.Value and FooterBlock.Address.

type HeaderBlock struct {
	ID        string `json:"id"`
	LogoURL   string `json:"logoUrl,omitempty"`
	LogoAlt   string `json:"logoAlt,omitempty"`
	BadgeText string `json:"badgeText,omitempty"`
}

type TitleBlock struct {
	ID    string     `json:"id"`
	Text  string     `json:"text"`
	Level TitleLevel `json:"level"`
}

type TextBlock struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type ListBlock struct {
	ID       string   `json:"id"`
	Items    []string `json:"items"`
	ListType ListType `json:"listType"`
}

type HighlightBlock struct {
	ID      string           `json:"id"`
	Variant HighlightVariant `json:"variant"`
	Title   string           `json:"title,omitempty"`
	Content string           `json:"content"`
}

type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StatsBlock struct {
	ID    string     `json:"id"`
	Stats []StatItem `json:"stats"`
}

type InfoRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type InfoTableBlock struct {
	ID   string    `json:"id"`
	Rows []InfoRow `json:"rows"`
}

type BadgeBlock struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Variant BadgeVariant `json:"variant"`
}

type ButtonBlock struct {
	ID      string        `json:"id"`
	Text    string        `json:"text"`
	URL     string        `json:"url"`
	Variant ButtonVariant `json:"variant,omitempty"`
}

type ImageBlock struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Width int    `json:"width,omitempty"`
}

type DividerBlock struct {
	ID string `json:"id"`
}

type SpacerBlock struct {
	ID     string `json:"id"`
	Height int    `json:"height"`
}

type FooterLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type FooterBlock struct {
	ID          string       `json:"id"`
	CompanyName string       `json:"companyName,omitempty"`
	Address     string       `json:"address,omitempty"`
	Copyright   string       `json:"copyright,omitempty"`
	Links       []FooterLink `json:"links"`
}

func (b HeaderBlock) BlockID() string    { return b.ID }
func (b TitleBlock) BlockID() string     { return b.ID }
func (b TextBlock) BlockID() string      { return b.ID }
func (b ListBlock) BlockID() string      { return b.ID }
func (b HighlightBlock) BlockID() string { return b.ID }
func (b StatsBlock) BlockID() string     { return b.ID }
func (b InfoTableBlock) BlockID() string { return b.ID }
func (b BadgeBlock) BlockID() string     { return b.ID }
func (b ButtonBlock) BlockID() string    { return b.ID }
func (b ImageBlock) BlockID() string     { return b.ID }
func (b DividerBlock) BlockID() string   { return b.ID }
func (b SpacerBlock) BlockID() string    { return b.ID }
func (b FooterBlock) BlockID() string    { return b.ID }

func (HeaderBlock) Kind() BlockType    { return TypeHeader }
func (TitleBlock) Kind() BlockType     { return TypeTitle }
func (TextBlock) Kind() BlockType      { return TypeText }
func (ListBlock) Kind() BlockType      { return TypeList }
func (HighlightBlock) Kind() BlockType { return TypeHighlight }
func (StatsBlock) Kind() BlockType     { return TypeStats }
func (InfoTableBlock) Kind() BlockType { return TypeInfoTable }
func (BadgeBlock) Kind() BlockType     { return TypeBadge }
func (ButtonBlock) Kind() BlockType    { return TypeButton }
func (ImageBlock) Kind() BlockType     { return TypeImage }
func (DividerBlock) Kind() BlockType   { return TypeDivider }
func (SpacerBlock) Kind() BlockType    { return TypeSpacer }
func (FooterBlock) Kind() BlockType    { return TypeFooter }

func (HeaderBlock) isBlock()    {}
func (TitleBlock) isBlock()     {}
func (TextBlock) isBlock()      {}
func (ListBlock) isBlock()      {}
func (HighlightBlock) isBlock() {}
func (StatsBlock) isBlock()     {}
func (InfoTableBlock) isBlock() {}
func (BadgeBlock) isBlock()     {}
func (ButtonBlock) isBlock()    {}
func (ImageBlock) isBlock()     {}
func (DividerBlock) isBlock()   {}
func (SpacerBlock) isBlock()    {}
func (FooterBlock) isBlock()    {}

// IsEmpty reports whether the header renders no visible markup. A badge of
// only whitespace or empty tags counts as no badge.
func (b HeaderBlock) IsEmpty() bool {
	return b.LogoURL == "" && sanitizer.IsEmpty(b.BadgeText)
}
