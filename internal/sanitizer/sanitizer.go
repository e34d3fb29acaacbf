// Package sanitizer turns rich-text fragments from the editor into markup
// email clients render consistently, by inlining a fixed style on every
// structural tag that does not already carry one.
package sanitizer

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// MetadataAttr is reserved for the generator's block wrappers. Sanitize
// removes it from every tag of a fragment.
const MetadataAttr = "data-mail-maker-block"

// TagStyles is the inline style stamped on each allow-listed tag.
var TagStyles = map[string]string{
	"p":      "margin: 0 0 12px 0; font-size: 16px; color: #4e5968; line-height: 1.6;",
	"h1":     "margin: 0 0 16px 0; font-size: 28px; font-weight: 700; color: #191f28; line-height: 1.4;",
	"h2":     "margin: 0 0 12px 0; font-size: 22px; font-weight: 700; color: #191f28; line-height: 1.4;",
	"h3":     "margin: 0 0 8px 0; font-size: 18px; font-weight: 600; color: #191f28; line-height: 1.4;",
	"strong": "font-weight: 700;",
	"b":      "font-weight: 700;",
	"em":     "font-style: italic;",
	"i":      "font-style: italic;",
	"ul":     "margin: 0 0 12px 0; padding-left: 24px;",
	"ol":     "margin: 0 0 12px 0; padding-left: 24px;",
	"li":     "margin: 0 0 4px 0; font-size: 16px; color: #4e5968; line-height: 1.6;",
}

// Sanitize inlines TagStyles into fragment and drops MetadataAttr. Tags that
// already have a non-empty style, tags outside the allow-list, text and
// comments are copied byte for byte, so Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	var out bytes.Buffer
	out.Grow(len(fragment) + len(fragment)/2)

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// A tag cut off by the end of input comes back here; keep its bytes.
			out.Write(z.Raw())
			break
		}

		// Raw must be copied before TagName or Token, which lower-case the buffer in place.
		raw := append([]byte(nil), z.Raw()...)
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.Write(raw)
			continue
		}

		tok := z.Token()
		stripped := dropReserved(&tok)
		style, ok := TagStyles[tok.Data]
		if !ok {
			if stripped {
				out.WriteString(tok.String())
			} else {
				out.Write(raw)
			}
			continue
		}

		idx := styleIndex(tok.Attr)
		switch {
		case idx < 0 && !stripped:
			out.Write(insertStyle(raw, len(tok.Data), style))
		case idx < 0:
			tok.Attr = append([]html.Attribute{{Key: "style", Val: style}}, tok.Attr...)
			out.WriteString(tok.String())
		case strings.TrimSpace(tok.Attr[idx].Val) == "":
			tok.Attr[idx].Val = style
			out.WriteString(tok.String())
		case stripped:
			out.WriteString(tok.String())
		default:
			out.Write(raw)
		}
	}

	return out.String()
}

// dropReserved removes MetadataAttr from tok and reports whether it was present.
func dropReserved(tok *html.Token) bool {
	kept := tok.Attr[:0]
	for _, a := range tok.Attr {
		if a.Namespace == "" && a.Key == MetadataAttr {
			continue
		}
		kept = append(kept, a)
	}
	stripped := len(kept) != len(tok.Attr)
	tok.Attr = kept
	return stripped
}

func styleIndex(attrs []html.Attribute) int {
	for i, a := range attrs {
		if a.Namespace == "" && a.Key == "style" {
			return i
		}
	}
	return -1
}

// insertStyle places the attribute right after "<name" so the rest of the
// raw tag, attribute quoting included, is preserved.
func insertStyle(raw []byte, nameLen int, style string) []byte {
	at := 1 + nameLen
	if at > len(raw) {
		at = len(raw)
	}
	attr := ` style="` + html.EscapeString(style) + `"`

	out := make([]byte, 0, len(raw)+len(attr))
	out = append(out, raw[:at]...)
	out = append(out, attr...)
	return append(out, raw[at:]...)
}

// IsEmpty reports whether a rich fragment has no visible text, e.g. "<p></p>"
// left behind by a cleared editor.
func IsEmpty(fragment string) bool {
	if strings.TrimSpace(fragment) == "" {
		return true
	}
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return true
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) != "" {
				return false
			}
		case html.SelfClosingTagToken, html.StartTagToken:
			name, _ := z.TagName()
			if string(name) == "img" {
				return false
			}
		}
	}
}
