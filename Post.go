package postlist

import (
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/gouniverse/utils"
)

// NewPost creates a post with its write-once fields set.
// A zero createdAt is replaced with the current time.
func NewPost(id int, userID int, createdAt time.Time) *Post {
	if createdAt.IsZero() {
		createdAt = carbon.Now().StdTime()
	}

	o := &Post{
		id:        id,
		userID:    userID,
		createdAt: createdAt,
	}

	o.SetTitle("").
		SetContent("").
		SetApproved(false)

	return o
}

type Post struct {
	id        int
	title     string
	content   string
	userID    int
	approved  bool
	createdAt time.Time
}

// ================================== METHODS ==================================

func (o *Post) Slug() string {
	return utils.StrSlugify(o.Title(), '-')
}

func (o *Post) IsApproved() bool {
	return o.approved
}

// ============================ SETTERS AND GETTERS ============================

func (o *Post) Approved() bool {
	return o.approved
}

func (o *Post) SetApproved(approved bool) *Post {
	o.approved = approved
	return o
}

func (o *Post) Content() string {
	return o.content
}

func (o *Post) SetContent(content string) *Post {
	o.content = content
	return o
}

func (o *Post) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Post) CreatedAtCarbon() carbon.Carbon {
	return carbon.CreateFromStdTime(o.createdAt)
}

func (o *Post) ID() int {
	return o.id
}

func (o *Post) Title() string {
	return o.title
}

func (o *Post) SetTitle(title string) *Post {
	o.title = title
	return o
}

func (o *Post) UserID() int {
	return o.userID
}
