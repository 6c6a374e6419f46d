// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Comment is a full row from the comments table. Comments cascade-delete
// with their review.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Author    string    `json:"author"`
	ReviewID  int       `json:"review_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
}

// ReviewComment is the projection served when listing a review's comments:
// the review id is implied by the request, the author's username is joined
// from the users table.
type ReviewComment struct {
	CommentID int       `json:"comment_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
}
