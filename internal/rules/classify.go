package rules

import "github.com/prettymuchbryce/reportdetails/internal/facts"

// CaseID classifies a report for the purpose of choosing which actions
// apply to it.
type CaseID string

const (
	CaseDefault              CaseID = "default"
	CaseSingleTransaction    CaseID = "single-transaction"
	CaseAggregateMoneyReport CaseID = "aggregate-money-report"
)

// Classify maps the three report kind facts to a CaseID. The first match
// wins: aggregate reports, then single transaction views, then default.
func Classify(isMoneyRequestReport, isInvoiceReport, isSingleTransactionView bool) CaseID {
	if isMoneyRequestReport || isInvoiceReport {
		return CaseAggregateMoneyReport
	}
	if isSingleTransactionView {
		return CaseSingleTransaction
	}
	return CaseDefault
}

// ClassifyFacts classifies a snapshot.
func ClassifyFacts(f *facts.Facts) CaseID {
	return Classify(f.IsMoneyRequestReport(), f.IsInvoiceReport(), f.IsSingleTransactionView())
}
