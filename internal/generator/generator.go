// Package generator renders a block list into a standalone, table-based HTML
// email document. Every rendered block is wrapped in an element whose
// data-mail-maker-block attribute carries the block's JSON, so the parser
// package can restore the exact block list from the exported document.
package generator

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/sanitizer"
)

// MetadataAttr is the attribute holding a block's serialized source.
const MetadataAttr = sanitizer.MetadataAttr

// Placeholders rendered for empty fields.
const (
	PlaceholderTitle      = "제목"
	PlaceholderText       = "<p>본문</p>"
	PlaceholderHighlight  = "<p>내용</p>"
	PlaceholderInfoValue  = "-"
	PlaceholderButtonText = "버튼"
	PlaceholderImageURL   = "https://via.placeholder.com/600x300"
	PlaceholderImageAlt   = "이미지"
	PlaceholderLogoAlt    = "Logo"
	PlaceholderButtonURL  = "#"
)

const (
	defaultLang  = "ko"
	defaultTitle = "Email"
)

type Generator struct {
	lang  string
	title string
}

type Option func(*Generator)

func WithLang(lang string) Option {
	return func(g *Generator) {
		if lang != "" {
			g.lang = lang
		}
	}
}

// WithTitle sets the document <title>.
func WithTitle(title string) Option {
	return func(g *Generator) {
		if title != "" {
			g.title = title
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{lang: defaultLang, title: defaultTitle}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate renders blocks with the default generator. A nil layout means
// domains.DefaultLayout().
func Generate(blocks []domains.Block, layout *domains.LayoutSettings) (string, error) {
	return defaultGenerator.Generate(blocks, layout)
}

type documentData struct {
	Lang           string
	Title          string
	ContainerStyle template.CSS
	CellStyle      template.CSS
	Content        template.HTML
}

// Generate is deterministic: the same blocks and layout always produce the
// same bytes.
func (g *Generator) Generate(blocks []domains.Block, layout *domains.LayoutSettings) (string, error) {
	l := domains.DefaultLayout()
	if layout != nil {
		l = *layout
	}

	parts := make([]string, 0, len(blocks))
	for i, b := range blocks {
		wrapped, err := RenderBlock(b)
		if err != nil {
			return "", fmt.Errorf("render block %d: %w", i, err)
		}
		if wrapped != "" {
			parts = append(parts, wrapped)
		}
	}

	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, documentData{
		Lang:           g.lang,
		Title:          g.title,
		ContainerStyle: containerStyle(l),
		CellStyle:      contentCellStyle(l),
		Content:        template.HTML(strings.Join(parts, "\n")),
	})
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}

type wrapperData struct {
	Meta string
	Body template.HTML
}

// RenderBlock renders one block inside its metadata wrapper. A header with
// neither logo nor badge has no markup and yields "" with no wrapper, which
// makes it unrecoverable by the parser. Every other block keeps its wrapper
// even when its body is empty.
func RenderBlock(b domains.Block) (string, error) {
	if b == nil {
		return "", domains.ErrNilBlock
	}
	if h, ok := b.(domains.HeaderBlock); ok && h.IsEmpty() {
		return "", nil
	}
	body, err := renderBody(b)
	if err != nil {
		return "", err
	}

	meta, err := domains.EncodeBlock(b)
	if err != nil {
		return "", fmt.Errorf("encode %s block: %w", b.Kind(), err)
	}

	var buf bytes.Buffer
	if err := blockTemplates.ExecuteTemplate(&buf, "block", wrapperData{Meta: string(meta), Body: body}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderBody(b domains.Block) (template.HTML, error) {
	switch v := b.(type) {
	case domains.HeaderBlock:
		var badge template.HTML
		if !sanitizer.IsEmpty(v.BadgeText) {
			badge = template.HTML(sanitizer.Sanitize(v.BadgeText))
		}
		return execute("header", headerData{
			LogoURL: v.LogoURL,
			LogoAlt: orDefault(v.LogoAlt, PlaceholderLogoAlt),
			Badge:   badge,
		})
	case domains.TitleBlock:
		return execute("title", titleData{
			H2:   v.Level == domains.TitleH2,
			Text: orDefault(v.Text, PlaceholderTitle),
		})
	case domains.TextBlock:
		return execute("text", textData{Content: rich(v.Content, PlaceholderText)})
	case domains.ListBlock:
		return execute("list", listData{
			Numbered: v.ListType == domains.ListNumber,
			Items:    v.Items,
		})
	case domains.HighlightBlock:
		return execute("highlight", highlightData{
			Style:   highlightStyle(v.Variant),
			Title:   v.Title,
			Content: rich(v.Content, PlaceholderHighlight),
		})
	case domains.StatsBlock:
		return execute("stats", statsData{Cells: statCells(v.Stats)})
	case domains.InfoTableBlock:
		return execute("infoTable", infoTableData{Rows: infoRows(v.Rows)})
	case domains.BadgeBlock:
		return execute("badge", badgeData{Style: badgeStyle(v.Variant), Text: v.Text})
	case domains.ButtonBlock:
		return execute("button", buttonData{
			URL:   orDefault(v.URL, PlaceholderButtonURL),
			Style: buttonStyle(v.Variant),
			Text:  orDefault(v.Text, PlaceholderButtonText),
		})
	case domains.ImageBlock:
		return execute("image", imageData{
			URL:   orDefault(v.URL, PlaceholderImageURL),
			Alt:   orDefault(v.Alt, PlaceholderImageAlt),
			Width: v.Width,
			Style: imageStyle(v.Width),
		})
	case domains.DividerBlock:
		return execute("divider", nil)
	case domains.SpacerBlock:
		return execute("spacer", spacerData{Style: spacerStyle(v.Height)})
	case domains.FooterBlock:
		return execute("footer", footerData{
			CompanyName: v.CompanyName,
			Address:     template.HTML(sanitizer.Sanitize(v.Address)),
			Copyright:   v.Copyright,
			Links:       v.Links,
		})
	default:
		return "", fmt.Errorf("%w: %T", domains.ErrUnknownBlockType, b)
	}
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := blockTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// rich sanitizes a rich fragment, substituting placeholder when it is empty.
func rich(fragment, placeholder string) template.HTML {
	if sanitizer.IsEmpty(fragment) {
		fragment = placeholder
	}
	return template.HTML(sanitizer.Sanitize(fragment))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

type headerData struct {
	LogoURL string
	LogoAlt string
	Badge   template.HTML
}

type titleData struct {
	H2   bool
	Text string
}

type textData struct {
	Content template.HTML
}

type listData struct {
	Numbered bool
	Items    []string
}

type highlightData struct {
	Style   template.CSS
	Title   string
	Content template.HTML
}

type statCell struct {
	Width int
	Style template.CSS
	Label string
	Value string
}

type statsData struct {
	Cells []statCell
}

func statCells(stats []domains.StatItem) []statCell {
	if len(stats) == 0 {
		return nil
	}
	width := 100 / len(stats)
	cells := make([]statCell, len(stats))
	for i, s := range stats {
		cells[i] = statCell{Width: width, Style: statCellStyle(width), Label: s.Label, Value: s.Value}
	}
	return cells
}

type infoRow struct {
	Label      string
	Value      template.HTML
	LabelStyle template.CSS
	ValueStyle template.CSS
}

type infoTableData struct {
	Rows []infoRow
}

// The row divider is a bottom border on every row except the last.
func infoRows(rows []domains.InfoRow) []infoRow {
	out := make([]infoRow, len(rows))
	for i, r := range rows {
		last := i == len(rows)-1
		out[i] = infoRow{
			Label:      r.Label,
			Value:      rich(r.Value, PlaceholderInfoValue),
			LabelStyle: infoCellStyle(last, true),
			ValueStyle: infoCellStyle(last, false),
		}
	}
	return out
}

type badgeData struct {
	Style template.CSS
	Text  string
}

type buttonData struct {
	URL   string
	Style template.CSS
	Text  string
}

type imageData struct {
	URL   string
	Alt   string
	Width int
	Style template.CSS
}

type spacerData struct {
	Style template.CSS
}

type footerData struct {
	CompanyName string
	Address     template.HTML
	Copyright   string
	Links       []domains.FooterLink
}
