package issuance

// CreateIssueRequest is the POST /api/issue payload.
type CreateIssueRequest struct {
	BranchID   uint              `json:"branch_id" validate:"required"`
	EmployeeID uint              `json:"employee_id" validate:"required"`
	IssueDate  string            `json:"issue_date" validate:"required"`
	Remarks    string            `json:"remarks"`
	Status     string            `json:"status"`
	Items      []LineItemRequest `json:"items" validate:"required,min=1"`
	UserID     uint              `json:"userId" validate:"required"`
}

type LineItemRequest struct {
	ProductID  uint    `json:"product_id"`
	Qty        float64 `json:"qty"`
	UOM        string  `json:"uom"`
	BatchNo    string  `json:"batch_no"`
	ExpiryDate string  `json:"expiry_date"`
}

// CreateResult is what a committed issuance returns to the caller.
type CreateResult struct {
	IssueID uint
	IssueNo string
}
