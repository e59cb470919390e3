package source

import "fmt"

// Episode is one entry of an anime's ordered episode list.
type Episode struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title,omitempty"`
	URL    string `json:"url,omitempty"`
}

func (e *Episode) String() string {
	return e.DisplayTitle()
}

// Label is the "Episode N" caption used by history entries.
func (e *Episode) Label() string {
	return fmt.Sprintf("Episode %d", e.Number)
}

// DisplayTitle falls back to the label when the API sent no title.
func (e *Episode) DisplayTitle() string {
	if e.Title == "" {
		return e.Label()
	}
	return e.Title
}
