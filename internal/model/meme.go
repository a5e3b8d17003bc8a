package model

type Meme struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	BoxCount   int       `json:"box_count"`
	Category   string    `json:"category,omitempty"`
	Likes      int       `json:"likes"`
	Comments   []Comment `json:"comments,omitempty"`
	CreatedAt  string    `json:"created_at,omitempty"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
}

type Comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	User      string `json:"user"`
	CreatedAt string `json:"created_at"`
}

// Categories a meme can carry. Values synthesized at normalization
// time come from this set.
var Categories = []string{"Trending", "New", "Classic", "Random"}
