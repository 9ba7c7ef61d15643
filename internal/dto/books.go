package dto

type AddBookRequestDTO struct {
	Title    string `json:"title" example:"The Blue Umbrella"`
	DailyFee int64  `json:"daily_fee" example:"5000"`
}

type BookResponseDTO struct {
	ID       int    `json:"id" example:"12"`
	Title    string `json:"title" example:"The Blue Umbrella"`
	DailyFee int64  `json:"daily_fee" example:"5000"`
	Status   string `json:"status" example:"PENDING_REVIEW"`
}
