package source

import (
	"fmt"
	"html"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// htmlConverter puts each block element on its own line and leaves text
// unescaped, so quiz lines reach the parser as the author typed them.
var htmlConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	),
	converter.WithEscapeMode(converter.EscapeModeDisabled),
)

// htmlToText converts an HTML page to plain lines of text.
func htmlToText(page string) (string, error) {
	text, err := htmlConverter.ConvertString(page)
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}
	// The base plugin re-encodes <, > and & in text nodes.
	return html.UnescapeString(text), nil
}
