package carspec

// TextExtractor converts page markup into plain text, one text node per line.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}
