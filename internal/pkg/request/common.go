package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// DateQuery is a common struct for endpoints that take a single calendar date.
type DateQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// ListParams holds shared pagination parameters for list endpoints.
type ListParams struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
