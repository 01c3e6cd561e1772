// Package ui provides shared UI constants.
package ui

// Layout constants shared by list screens.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// HeaderHeight is the title row plus the separator under it.
	HeaderHeight = 2

	// FooterHeight is the key hint row.
	FooterHeight = 1
)
