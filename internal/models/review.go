// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Review is a full row from the reviews table.
type Review struct {
	ReviewID     int       `json:"review_id"`
	Title        string    `json:"title"`
	ReviewBody   string    `json:"review_body"`
	Designer     *string   `json:"designer"`
	ReviewImgURL *string   `json:"review_img_url"`
	Votes        int       `json:"votes"`
	Category     string    `json:"category"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewDetail is a review together with its computed comment count.
// The count is aggregated at read time and never stored.
type ReviewDetail struct {
	Review
	CommentCount int `json:"comment_count"`
}

// ReviewSummary is the projection served by the review listing: the
// full body and designer are omitted, the comment count is included.
type ReviewSummary struct {
	Owner        string    `json:"owner"`
	Title        string    `json:"title"`
	ReviewID     int       `json:"review_id"`
	Category     string    `json:"category"`
	ReviewImgURL *string   `json:"review_img_url"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}
