package gallery

import "time"

// Item is a shared photo. ImageURL is either a remote URL or a session blob path.
type Item struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	Author    string    `json:"author"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Timestamp string    `json:"timestamp"` // relative, eg: "2 hours ago"
	Likers    []string  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (it Item) likedBy(member string) bool {
	for _, l := range it.Likers {
		if l == member {
			return true
		}
	}
	return false
}

type NewPhoto struct {
	File     []byte `json:"file" validate:"required,min=1"`
	Filename string `json:"filename"`
	Caption  string `json:"caption" validate:"notblank"`
}
