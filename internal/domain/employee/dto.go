package employee

// TotalResponse is the payload for the employee head-count endpoint
type TotalResponse struct {
	Total int64 `json:"total"`
}

// WithSiteRow is a roster row with the employee's site name resolved
type WithSiteRow struct {
	FullNameTH   string `json:"full_name_th"`
	FullNameEN   string `json:"full_name_en"`
	Email        string `json:"email"`
	LocationName string `json:"location_name"`
}
