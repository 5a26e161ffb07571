package report

type SalaryReportResponse struct {
	ID          uint   `json:"id"`
	RefNumber   string `json:"ref_number"`
	Status      string `json:"status"`
	RecordCount int    `json:"record_count"`
	GrandTotal  string `json:"grand_total"`
	FilePath    string `json:"file_path,omitempty"`
	FailReason  string `json:"fail_reason,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
