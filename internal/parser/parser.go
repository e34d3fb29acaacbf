// Package parser restores a block list from a document produced by the
// generator package. It reads only the data-mail-maker-block metadata the
// generator embeds; the visible markup is never interpreted.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/sanitizer"
)

var (
	// ErrNotRecognized means the input carries no block metadata at all.
	ErrNotRecognized = errors.New("html was not exported by mail maker")
	// ErrMalformedMetadata means metadata is present but cannot be decoded.
	ErrMalformedMetadata = errors.New("malformed block metadata")
)

// Parse returns the embedded blocks in document order. A single undecodable
// payload fails the whole call; blocks decoded before it are discarded.
func Parse(doc string) (domains.Blocks, error) {
	payloads := metadata(doc, -1)
	if len(payloads) == 0 {
		return nil, ErrNotRecognized
	}

	blocks := make(domains.Blocks, 0, len(payloads))
	for i, payload := range payloads {
		block, err := domains.DecodeBlock([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrMalformedMetadata, i, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func IsRecognized(doc string) bool {
	return len(metadata(doc, 1)) > 0
}

func CountBlocks(doc string) int {
	return len(metadata(doc, -1))
}

// metadata collects the unescaped metadata attribute values of start tags,
// stopping after limit values when limit is positive. Text that merely looks
// like the attribute is not a tag and is never matched.
func metadata(doc string, limit int) []string {
	var out []string
	z := html.NewTokenizer(strings.NewReader(doc))
	for limit <= 0 || len(out) < limit {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.StartTagToken, html.SelfClosingTagToken:
			for _, a := range z.Token().Attr {
				if a.Namespace == "" && a.Key == sanitizer.MetadataAttr {
					out = append(out, a.Val)
					break
				}
			}
		}
	}
	return out
}
