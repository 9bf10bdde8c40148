package dto

// ReportParams defines query parameters for PDF report generation. From/To
// bound the inclusive date window; either or both may be omitted.
type ReportParams struct {
	Category string `form:"category,default=all"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
