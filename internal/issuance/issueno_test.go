package issuance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatIssueNo(t *testing.T) {
	require.Equal(t, "ISS-2024-000007", FormatIssueNo(2024, 7))
	require.Equal(t, "ISS-2025-000001", FormatIssueNo(2025, 1))
	// ids beyond six digits are not truncated
	require.Equal(t, "ISS-2025-1234567", FormatIssueNo(2025, 1234567))
}
