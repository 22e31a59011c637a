package cctp

const (
	StatusComplete     = "complete"
	PendingAttestation = "PENDING"
)

// Message is one burn message as reported by the attestation service.
type Message struct {
	Message                   string `json:"message"`
	Attestation               string `json:"attestation"`
	Status                    string `json:"status"`
	EventNonce                string `json:"eventNonce"`
	CctpVersion               string `json:"cctpVersion"`
	FinalityThresholdExecuted string `json:"finalityThresholdExecuted"`
}

// Complete reports whether the message carries a usable attestation.
func (m *Message) Complete() bool {
	return m.Status == StatusComplete && m.Attestation != "" && m.Attestation != PendingAttestation
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
}
