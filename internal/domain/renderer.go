package domain

// DocumentRenderer turns a heading and an ordered list of lines into a binary document.
type DocumentRenderer interface {
	Render(title string, lines []string) ([]byte, error)
	ContentType() string
	Extension() string
}
