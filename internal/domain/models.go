// Package domain provides domain models and typed errors for the NC News API.
package domain

import (
	"time"
)

// Topic is a category that articles belong to, identified by its slug.
// Topics are read-only through the API.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Article is a news article together with its derived comment count.
// CommentCount is computed by aggregating the comments table and is
// never stored on the articles row itself.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// Comment is a user comment attached to an article. CommentID and
// CreatedAt are assigned by the store at insert time; Votes defaults
// to zero.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an account that authors articles and comments, identified
// by its username.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
