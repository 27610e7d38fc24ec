package xmltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

const sampleDoc = `<?xml version="1.0" ?>
<Root xmlns="urn:example:ns" id="r1">
    <First attr="a">hello</First>
    <Second/>
    <First attr="b"> world </First>
</Root>`

func TestParseString(t *testing.T) {
	root, err := xmltree.ParseString(sampleDoc)
	require.NoError(t, err)

	assert.Equal(t, "Root", root.Name)
	assert.Equal(t, "urn:example:ns", root.Namespace)

	id, ok := root.Attr("id")
	require.True(t, ok)
	assert.Equal(t, "r1", id)

	_, ok = root.Attr("missing")
	assert.False(t, ok)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "First", root.Children[0].Name)
	assert.Equal(t, "Second", root.Children[1].Name)
	assert.Equal(t, "First", root.Children[2].Name)
}

func TestChildLookups(t *testing.T) {
	root, err := xmltree.ParseString(sampleDoc)
	require.NoError(t, err)

	first := root.Child("First")
	require.NotNil(t, first)
	assert.Equal(t, "hello", first.Text())

	assert.Nil(t, root.Child("Absent"))

	all := root.ChildrenNamed("First")
	require.Len(t, all, 2)
	attr, _ := all[1].Attr("attr")
	assert.Equal(t, "b", attr)
	assert.Equal(t, " world ", all[1].Text())
}

func TestParseRejectsEmptyAndMalformed(t *testing.T) {
	_, err := xmltree.ParseString("")
	assert.Error(t, err)

	_, err = xmltree.ParseString("<open>")
	assert.Error(t, err)
}
