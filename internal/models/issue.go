package models

import "time"

type IssueStatus string

const (
	IssueStatusDraft    IssueStatus = "Draft"
	IssueStatusApproved IssueStatus = "Approved"
)

// Issue is an issuance header: one branch dispensing supplies to one
// employee on one date. Header and lines are only ever written together,
// inside a single transaction, and are immutable afterwards.
type Issue struct {
	ID         uint        `gorm:"primaryKey"`
	IssueNo    string      `gorm:"size:30;uniqueIndex;not null"`
	BranchID   uint        `gorm:"index;not null"`
	EmployeeID uint        `gorm:"index;not null"`
	Status     IssueStatus `gorm:"size:20;not null"`
	IssueDate  time.Time   `gorm:"index;not null"`
	Remarks    string      `gorm:"size:255"`
	CreatedBy  uint        `gorm:"not null"`
	ApprovedBy *uint
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Lines []IssueLine `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE"`
}

type IssueLine struct {
	ID         uint    `gorm:"primaryKey"`
	IssueID    uint    `gorm:"index;not null"`
	ProductID  uint    `gorm:"index;not null"`
	Qty        float64 `gorm:"not null"`
	UOM        string  `gorm:"size:30"`
	BatchNo    string  `gorm:"size:50"`
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
