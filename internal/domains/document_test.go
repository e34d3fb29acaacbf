package domains_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoo999/mail-maker/internal/domains"
)

func ids(blocks domains.Blocks) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.BlockID()
	}
	return out
}

func newDoc(idList ...string) *domains.Document {
	doc := domains.NewDocument()
	for _, id := range idList {
		doc.Append(domains.DividerBlock{ID: id})
	}
	return doc
}

func TestNewDocument(t *testing.T) {
	doc := domains.NewDocument()
	assert.Empty(t, doc.Blocks)
	assert.Equal(t, domains.DefaultLayout(), doc.Layout)
	assert.Equal(t, domains.LayoutSettings{MaxWidth: 600, Alignment: domains.AlignCenter, Padding: 32}, doc.Layout)
}

func TestDocumentAdd(t *testing.T) {
	doc := domains.NewDocument()
	b, err := doc.Add(domains.TypeSpacer)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, b, doc.Blocks[0])

	_, err = doc.Add("carousel")
	assert.ErrorIs(t, err, domains.ErrUnknownBlockType)
	assert.Len(t, doc.Blocks, 1)
}

func TestDocumentAppendDoesNotMutatePrevious(t *testing.T) {
	doc := newDoc("a", "b")
	before := doc.Blocks
	doc.Append(domains.DividerBlock{ID: "c"})
	assert.Equal(t, []string{"a", "b"}, ids(before))
	assert.Equal(t, []string{"a", "b", "c"}, ids(doc.Blocks))
}

func TestDocumentUpdate(t *testing.T) {
	doc := domains.NewDocument()
	doc.Append(domains.TitleBlock{ID: "t", Text: "old", Level: domains.TitleH1})
	before := doc.Blocks

	require.NoError(t, doc.Update(domains.TitleBlock{ID: "t", Text: "new", Level: domains.TitleH2}))
	got, ok := doc.Find("t")
	require.True(t, ok)
	assert.Equal(t, "new", got.(domains.TitleBlock).Text)
	assert.Equal(t, "old", before[0].(domains.TitleBlock).Text)

	assert.ErrorIs(t, doc.Update(domains.TextBlock{ID: "t"}), domains.ErrBlockTypeChanged)
	assert.ErrorIs(t, doc.Update(domains.TitleBlock{ID: "missing"}), domains.ErrBlockNotFound)
	assert.ErrorIs(t, doc.Update(nil), domains.ErrNilBlock)
}

func TestDocumentDelete(t *testing.T) {
	doc := newDoc("a", "b", "c")
	require.NoError(t, doc.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, ids(doc.Blocks))
	assert.ErrorIs(t, doc.Delete("b"), domains.ErrBlockNotFound)
}

func TestDocumentMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a", "d"}},
		{name: "backward", from: 3, to: 1, want: []string{"a", "d", "b", "c"}},
		{name: "same position", from: 1, to: 1, want: []string{"a", "b", "c", "d"}},
		{name: "to end", from: 0, to: 3, want: []string{"b", "c", "d", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newDoc("a", "b", "c", "d")
			before := doc.Blocks
			require.NoError(t, doc.Move(tt.from, tt.to))
			assert.Equal(t, tt.want, ids(doc.Blocks))
			assert.Equal(t, []string{"a", "b", "c", "d"}, ids(before))
		})
	}
}

func TestDocumentMoveOutOfRange(t *testing.T) {
	doc := newDoc("a", "b")
	assert.ErrorIs(t, doc.Move(-1, 0), domains.ErrIndexOutOfRange)
	assert.ErrorIs(t, doc.Move(0, 2), domains.ErrIndexOutOfRange)
}

func TestDocumentMoveByID(t *testing.T) {
	doc := newDoc("a", "b", "c")
	require.NoError(t, doc.MoveByID("c", "a"))
	assert.Equal(t, []string{"c", "a", "b"}, ids(doc.Blocks))
	assert.ErrorIs(t, doc.MoveByID("x", "a"), domains.ErrBlockNotFound)
	assert.ErrorIs(t, doc.MoveByID("a", "x"), domains.ErrBlockNotFound)
}

func TestDocumentResetAndClone(t *testing.T) {
	doc := newDoc("a")
	doc.Reset([]domains.Block{domains.ListBlock{ID: "l", Items: []string{"x"}}})
	assert.Equal(t, []string{"l"}, ids(doc.Blocks))

	clone := doc.Clone()
	clone.Blocks[0].(domains.ListBlock).Items[0] = "changed"
	assert.Equal(t, "x", doc.Blocks[0].(domains.ListBlock).Items[0])
}

func TestValidateBlocks(t *testing.T) {
	assert.NoError(t, newDoc("a", "b").Validate())
	assert.ErrorIs(t, newDoc("a", "a").Validate(), domains.ErrDuplicateBlockID)
	assert.ErrorIs(t, newDoc("").Validate(), domains.ErrEmptyBlockID)
	assert.ErrorIs(t, domains.ValidateBlocks([]domains.Block{nil}), domains.ErrNilBlock)
}
