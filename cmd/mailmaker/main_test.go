package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/parser"
)

const sampleDocument = `{"blocks":[{"type":"title","id":"t","text":"Hi","level":"h2"},{"type":"divider","id":"d"}],"layout":{"maxWidth":520,"alignment":"center","padding":20}}`

func TestGenerateThenParse(t *testing.T) {
	var html bytes.Buffer
	require.NoError(t, run([]string{"generate", "-title", "Weekly"}, strings.NewReader(sampleDocument), &html))
	assert.Contains(t, html.String(), "<title>Weekly</title>")
	assert.Contains(t, html.String(), "max-width: 520px;")

	var out bytes.Buffer
	require.NoError(t, run([]string{"parse"}, &html, &out))

	var doc document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, domains.Blocks{
		domains.TitleBlock{ID: "t", Text: "Hi", Level: domains.TitleH2},
		domains.DividerBlock{ID: "d"},
	}, doc.Blocks)
}

func TestGenerateFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.json")
	outPath := filepath.Join(dir, "mail.html")
	require.NoError(t, os.WriteFile(in, []byte(sampleDocument), 0o600))

	require.NoError(t, run([]string{"generate", "-in", in, "-out", outPath}, nil, &bytes.Buffer{}))

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, parser.CountBlocks(string(html)))
}

func TestInspect(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"inspect"}, strings.NewReader("<p>plain</p>"), &out))
	assert.Equal(t, "recognized: false\nblocks: 0\n", out.String())
}

func TestParseRejectsForeignHTML(t *testing.T) {
	err := run([]string{"parse"}, strings.NewReader("<p>plain</p>"), &bytes.Buffer{})
	assert.ErrorIs(t, err, parser.ErrNotRecognized)
}

func TestStarter(t *testing.T) {
	var list bytes.Buffer
	require.NoError(t, run([]string{"starter"}, nil, &list))
	assert.Equal(t, 3, strings.Count(list.String(), "\n"))
	assert.True(t, strings.HasPrefix(list.String(), "notice\t"))

	var html bytes.Buffer
	require.NoError(t, run([]string{"starter", "newsletter"}, nil, &html))
	assert.True(t, parser.IsRecognized(html.String()))

	var blocks bytes.Buffer
	require.NoError(t, run([]string{"starter", "-json", "notice"}, nil, &blocks))
	var doc document
	require.NoError(t, json.Unmarshal(blocks.Bytes(), &doc))
	assert.NotEmpty(t, doc.Blocks)

	assert.Error(t, run([]string{"starter", "missing"}, nil, &bytes.Buffer{}))
}

func TestHashPassword(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"hash-password", "s3cret"}, nil, &out))
	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	assert.ErrorIs(t, run([]string{"hash-password"}, nil, &bytes.Buffer{}), errUsage)
}

func TestUnknownCommand(t *testing.T) {
	assert.ErrorIs(t, run(nil, nil, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run([]string{"send"}, nil, &bytes.Buffer{}), errUsage)
}
