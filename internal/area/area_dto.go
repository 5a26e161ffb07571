package area

type CreateAreaRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateAreaRequest struct {
	Name string `json:"name" binding:"required"`
}

type AreaResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}
