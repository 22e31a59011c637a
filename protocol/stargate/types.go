package stargate

const (
	StepApprove = "approve"
	StepBridge  = "bridge"
)

type Transaction struct {
	Data  string `json:"data"`
	To    string `json:"to"`
	From  string `json:"from"`
	Value string `json:"value"`
}

type Step struct {
	Type        string      `json:"type"`
	Sender      string      `json:"sender"`
	ChainKey    string      `json:"chainKey"`
	Transaction Transaction `json:"transaction"`
}

type Duration struct {
	Estimated float64 `json:"estimated"`
}

type QuoteError struct {
	Message string `json:"message"`
}

type Fee struct {
	Token    string `json:"token"`
	ChainKey string `json:"chainKey"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
}

type Quote struct {
	Route        string      `json:"route"`
	Error        *QuoteError `json:"error"`
	SrcAmount    string      `json:"srcAmount"`
	DstAmount    string      `json:"dstAmount"`
	DstAmountMin string      `json:"dstAmountMin"`
	SrcToken     string      `json:"srcToken"`
	DstToken     string      `json:"dstToken"`
	SrcChainKey  string      `json:"srcChainKey"`
	DstChainKey  string      `json:"dstChainKey"`
	Duration     Duration    `json:"duration"`
	Fees         []Fee       `json:"fees"`
	Steps        []Step      `json:"steps"`
}

// Step returns the first step of the given type.
func (q *Quote) Step(stepType string) (*Step, bool) {
	for i := range q.Steps {
		if q.Steps[i].Type == stepType {
			return &q.Steps[i], true
		}
	}
	return nil, false
}

type QuotesResponse struct {
	Quotes []Quote `json:"quotes"`
}
