package repository

import (
	"fmt"
)

// Single-table layout: everything belonging to a customer shares one
// partition. Payment sort keys embed year, date and a ULID so a prefix
// query returns them ascending by date with insertion order on ties.
//
//	CUSTOMER#<id> / PROFILE
//	CUSTOMER#<id> / ACCOUNT#<year>
//	CUSTOMER#<id> / PAYMENT#<year>#<date>#<ulid>

const (
	profileSK     = "PROFILE"
	customerGSIPK = "CUSTOMER"
)

func customerPK(customerID string) string {
	return fmt.Sprintf("CUSTOMER#%s", customerID)
}

func accountSK(year int) string {
	return fmt.Sprintf("ACCOUNT#%04d", year)
}

func paymentYearPrefix(year int) string {
	return fmt.Sprintf("PAYMENT#%04d#", year)
}

func paymentSK(year int, date, paymentID string) string {
	return fmt.Sprintf("%s%s#%s", paymentYearPrefix(year), date, paymentID)
}
