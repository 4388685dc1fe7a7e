package issuance

import "fmt"

// The header row is first inserted with this placeholder; the real number
// can only be derived once the row id is known.
const placeholderIssueNo = "TEMP"

// FormatIssueNo derives the display code from the store-assigned row id,
// e.g. id 7 in 2024 becomes "ISS-2024-000007". Uniqueness follows from the
// id; no separate check is made.
func FormatIssueNo(year int, id uint) string {
	return fmt.Sprintf("ISS-%d-%06d", year, id)
}
