package model

// Contributor is a leaderboard entry for the top-contributor list.
// The list is static placeholder data, there is no backing computation.
type Contributor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
	Points     int    `json:"points"`
	Rank       int    `json:"rank"`
	MemesCount int    `json:"memes_count"`
}
