package entities

import "fmt"

// Counter field names inside the single shared counter record. One record,
// three logically separate sequences (job orders, services, portfolio).
const (
	CounterFieldProject   = "projectSeq"
	CounterFieldService   = "serviceSeq"
	CounterFieldPortfolio = "portfolioSeq"
)

// FormatProjectID renders a job-order sequence number as the human-readable
// project identifier, e.g. 1 => "P0000001".
func FormatProjectID(seq int64) string {
	return fmt.Sprintf("P%07d", seq)
}

// FormatServiceID renders a service-catalog sequence number, e.g. "S0000001".
func FormatServiceID(seq int64) string {
	return fmt.Sprintf("S%07d", seq)
}

// FormatPortfolioID renders a portfolio sequence number, e.g. "PF0000001".
func FormatPortfolioID(seq int64) string {
	return fmt.Sprintf("PF%07d", seq)
}
