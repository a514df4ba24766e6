package models

// Podcast is a single search hit as returned by the upstream directory.
// Both fields are optional upstream, so nil means "not provided".
type Podcast struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// NewPodcast builds a Podcast with both fields set
func NewPodcast(title, description string) Podcast {
	return Podcast{Title: &title, Description: &description}
}

// GetTitle returns the title or an empty string
func (p Podcast) GetTitle() string {
	if p.Title == nil {
		return ""
	}
	return *p.Title
}

// GetDescription returns the description or an empty string
func (p Podcast) GetDescription() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}
