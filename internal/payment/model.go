package payment

// KeyValue is the provider's ordered identity pair. Order matters: the
// first debitParty entry carries the payer's account identifier.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Request is the merchant-pay payload, serialized verbatim to the provider.
type Request struct {
	Amount          string     `json:"amount"`
	Currency        string     `json:"currency"`
	DescriptionText string     `json:"descriptionText"`
	RequestDate     string     `json:"requestDate"`
	DebitParty      []KeyValue `json:"debitParty"`
	CreditParty     []KeyValue `json:"creditParty"`
	Metadata        []KeyValue `json:"metadata"`

	RequestingOrganisationTransactionReference string `json:"requestingOrganisationTransactionReference"`
	OriginalTransactionReference               string `json:"originalTransactionReference"`
}

// ClearCorrelation blanks the request date and both transaction references
// regardless of what the caller supplied.
func (r *Request) ClearCorrelation() {
	r.RequestDate = ""
	r.RequestingOrganisationTransactionReference = ""
	r.OriginalTransactionReference = ""
}

// Result mirrors the provider outcome: its HTTP status and decoded body,
// or a synthesized 500 with an error map on local failure.
type Result struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}
