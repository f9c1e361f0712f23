package dto

import "github.com/yunqiuxu/unswtalk/internal/models"

type FriendListResponse struct {
	Friends []models.Student `json:"friends"`
}

type SuggestionsResponse struct {
	Suggestions []models.Student `json:"suggestions"`
}
