package generator

import (
	"fmt"
	"html/template"

	"github.com/mhoo999/mail-maker/internal/domains"
)

type highlightColors struct {
	Background string
	Border     string
}

var highlightPalette = map[domains.HighlightVariant]highlightColors{
	domains.HighlightInfo:    {Background: "#e8f3ff", Border: "#3182f6"},
	domains.HighlightWarning: {Background: "#fff3e0", Border: "#ff9800"},
	domains.HighlightSuccess: {Background: "#e8f5e9", Border: "#4caf50"},
	domains.HighlightError:   {Background: "#ffebee", Border: "#f44336"},
}

type badgeColors struct {
	Background string
	Text       string
}

var badgePalette = map[domains.BadgeVariant]badgeColors{
	domains.BadgeRed:    {Background: "#ffebee", Text: "#d32f2f"},
	domains.BadgeOrange: {Background: "#fff3e0", Text: "#e65100"},
	domains.BadgeBlue:   {Background: "#e8f3ff", Text: "#3182f6"},
	domains.BadgeGreen:  {Background: "#e8f5e9", Text: "#2e7d32"},
}

// Unknown variants render with the default variant's colours.
func highlightStyle(v domains.HighlightVariant) template.CSS {
	c, ok := highlightPalette[v]
	if !ok {
		c = highlightPalette[domains.HighlightInfo]
	}
	return template.CSS(fmt.Sprintf(
		"margin: 24px 0; padding: 16px; background-color: %s; border-left: 4px solid %s; border-radius: 4px;",
		c.Background, c.Border,
	))
}

func badgeStyle(v domains.BadgeVariant) template.CSS {
	c, ok := badgePalette[v]
	if !ok {
		c = badgePalette[domains.BadgeBlue]
	}
	return template.CSS(fmt.Sprintf(
		"display: inline-block; padding: 4px 12px; background-color: %s; color: %s; font-size: 12px; font-weight: 600; border-radius: 12px;",
		c.Background, c.Text,
	))
}

func buttonStyle(v domains.ButtonVariant) template.CSS {
	if v == domains.ButtonSecondary {
		return "display: inline-block; padding: 12px 26px; background-color: #ffffff; color: #3182f6; border: 2px solid #3182f6; font-size: 16px; font-weight: 600; text-decoration: none; border-radius: 8px;"
	}
	return "display: inline-block; padding: 14px 28px; background-color: #3182f6; color: #ffffff; font-size: 16px; font-weight: 600; text-decoration: none; border-radius: 8px;"
}

func imageStyle(width int) template.CSS {
	if width > 0 {
		return template.CSS(fmt.Sprintf("width: %dpx; max-width: 100%%; height: auto; border-radius: 8px;", width))
	}
	return "max-width: 100%; height: auto; border-radius: 8px;"
}

// Spacer heights are written as given, including values outside the editor's range.
func spacerStyle(height int) template.CSS {
	return template.CSS(fmt.Sprintf("height: %dpx; line-height: %dpx; font-size: 1px;", height, height))
}

func statCellStyle(width int) template.CSS {
	return template.CSS(fmt.Sprintf(
		"width: %d%%; padding: 16px 8px; text-align: center; background-color: #f9fafb; border-radius: 8px;",
		width,
	))
}

func infoCellStyle(last, label bool) template.CSS {
	border := " border-bottom: 1px solid #e5e8eb;"
	if last {
		border = ""
	}
	if label {
		return template.CSS("padding: 12px 16px; font-size: 14px; font-weight: 600; color: #6b7684; vertical-align: top;" + border)
	}
	return template.CSS("padding: 12px 16px; font-size: 14px; color: #191f28; line-height: 1.5;" + border)
}

func containerStyle(l domains.LayoutSettings) template.CSS {
	return template.CSS(fmt.Sprintf(
		"width: 100%%; max-width: %dpx;%s background-color: #ffffff; border-radius: 8px; overflow: hidden;",
		l.MaxWidth, alignmentRule(l.Alignment),
	))
}

// alignmentRule returns "" for alignments it does not know.
func alignmentRule(a domains.Alignment) string {
	switch a {
	case domains.AlignCenter:
		return " margin: 0 auto;"
	case domains.AlignLeft:
		return " margin: 0;"
	case domains.AlignRight:
		return " margin-left: auto; margin-right: 0;"
	default:
		return ""
	}
}

func contentCellStyle(l domains.LayoutSettings) template.CSS {
	return template.CSS(fmt.Sprintf("padding: %dpx;", l.Padding))
}
