package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneratedContentPlainJSON(t *testing.T) {
	reply := `{"title":"Aurelia Halo Ring","description":"A ring.","shortDescription":"Halo ring.","tags":["ring","halo"]}`
	content, err := parseGeneratedContent(reply)
	require.NoError(t, err)
	assert.Equal(t, "Aurelia Halo Ring", content.Title)
	assert.Equal(t, []string{"ring", "halo"}, content.Tags)
}

func TestParseGeneratedContentStripsFences(t *testing.T) {
	reply := "```json\n{\"title\":\"Aurelia\",\"description\":\"d\",\"shortDescription\":\"s\",\"tags\":[]}\n```"
	content, err := parseGeneratedContent(reply)
	require.NoError(t, err)
	assert.Equal(t, "Aurelia", content.Title)

	// bare fences without the language marker
	reply = "```\n{\"title\":\"Aurelia\",\"description\":\"d\"}\n```"
	content, err = parseGeneratedContent(reply)
	require.NoError(t, err)
	assert.Equal(t, "Aurelia", content.Title)
}

func TestParseGeneratedContentRejectsGarbage(t *testing.T) {
	_, err := parseGeneratedContent("I couldn't look at the image, sorry!")
	assert.Error(t, err)

	_, err = parseGeneratedContent(`{"tags":["only","tags"]}`)
	assert.Error(t, err)
}
