package itemsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_InlineList(t *testing.T) {
	p := &defaultProcessor{}

	items, err := p.Process(context.Background(), "apples, pears ,  bananas,")
	require.NoError(t, err)
	assert.Equal(t, []string{"apples", "pears", "bananas"}, items)
}

func TestProcess_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.txt")
	content := "Whole Milk 1L\n\n  Sourdough Loaf  \nFuji Apples 1kg\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p := &defaultProcessor{}
	items, err := p.Process(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Whole Milk 1L", "Sourdough Loaf", "Fuji Apples 1kg"}, items)
}

func TestProcess_FileSmartQuotesNormalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("“Curly” Fries\nPlain Fries\n"), 0o644))

	p := &defaultProcessor{}
	items, err := p.Process(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{`"Curly" Fries`, "Plain Fries"}, items)
}

func TestProcess_Stdin(t *testing.T) {
	p := &defaultProcessor{stdin: strings.NewReader("one\ntwo\n\nthree")}

	items, err := p.Process(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, items)
}

func TestProcess_Directory(t *testing.T) {
	p := &defaultProcessor{}

	_, err := p.Process(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestProcess_EmptyInput(t *testing.T) {
	p := &defaultProcessor{}

	_, err := p.Process(context.Background(), " , ,")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no items")
}
