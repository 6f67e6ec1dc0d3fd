package diag

import "fmt"

// The message catalog is fixed; consumers match on these strings.
const (
	msgMissingKey   = "missing key"
	msgMissingValue = "missing value"
	msgEmptyBlock   = "empty block"
)

func msgArrayValues(declared, actual int) string {
	if actual < declared {
		return fmt.Sprintf("insufficient array values: declared %d, found %d", declared, actual)
	}
	return fmt.Sprintf("exceeded declared array size: declared %d, found %d", declared, actual)
}

func msgDataRows(declared, actual int) string {
	if actual < declared {
		return fmt.Sprintf("insufficient data rows: declared %d, found %d", declared, actual)
	}
	return fmt.Sprintf("exceeded declared row count: declared %d, found %d", declared, actual)
}

func msgRowValues(expected, actual int) string {
	if actual < expected {
		return fmt.Sprintf("insufficient values in row: expected %d, found %d", expected, actual)
	}
	return fmt.Sprintf("exceeded field count: expected %d, found %d", expected, actual)
}
