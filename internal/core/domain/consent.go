package domain

// AcknowledgmentKey is the fixed identifier of the acknowledgment record in
// a device's durable storage.
const AcknowledgmentKey = "agent-battles-warning-acknowledged"

// AcknowledgedValue is written when the user confirms the disclaimer.
const AcknowledgedValue = "true"

// IsTruthy reports whether a stored value counts as an acknowledgment.
// Any non-empty value does.
func IsTruthy(value string) bool {
	return value != ""
}

// ConsentStatus is the per-mount resolution of the acknowledgment record.
type ConsentStatus string

const (
	ConsentUnknown         ConsentStatus = "unknown"
	ConsentAcknowledged    ConsentStatus = "acknowledged"
	ConsentNotAcknowledged ConsentStatus = "not_acknowledged"
)

// Resolved reports whether the storage check has completed.
func (s ConsentStatus) Resolved() bool {
	return s == ConsentAcknowledged || s == ConsentNotAcknowledged
}

// ConsentState is what the presentation layer renders for the disclaimer.
type ConsentState struct {
	Status       ConsentStatus `json:"status"`
	Dismissed    bool          `json:"dismissed"`
	ModalVisible bool          `json:"modal_visible"`
}

// StateFor derives the rendered state from a status. An unresolved status
// renders as dismissed so the modal never flashes before the check finishes.
func StateFor(status ConsentStatus) ConsentState {
	switch status {
	case ConsentNotAcknowledged:
		return ConsentState{Status: status, Dismissed: false, ModalVisible: true}
	case ConsentAcknowledged:
		return ConsentState{Status: status, Dismissed: true, ModalVisible: false}
	default:
		return ConsentState{Status: ConsentUnknown, Dismissed: true, ModalVisible: false}
	}
}

// Banner is the permanent notice shown on every page, regardless of the
// modal.
type Banner struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// DefaultBanner returns the top-of-page notice.
func DefaultBanner() Banner {
	return Banner{
		Text: "This application was built and audited by AI agents. Use at your own risk. Smart contracts are experimental.",
		Icon: "⚠️",
	}
}

// Disclaimer is the content of the blocking first-visit modal.
type Disclaimer struct {
	Title        string   `json:"title"`
	Headline     string   `json:"headline"`
	Intro        string   `json:"intro"`
	Risks        []string `json:"risks"`
	Warning      string   `json:"warning"`
	ConfirmLabel string   `json:"confirm_label"`
	Footnote     string   `json:"footnote"`
}

// DefaultDisclaimer returns the first-visit modal content.
func DefaultDisclaimer() Disclaimer {
	return Disclaimer{
		Title:    "Important Disclaimer",
		Headline: "This application was built and audited entirely by AI agents.",
		Intro:    "While the smart contracts have been tested and reviewed, they are experimental software. By using this application, you acknowledge:",
		Risks: []string{
			"Smart contracts may contain undiscovered bugs or vulnerabilities",
			"You may lose some or all funds you deposit",
			"The code has not been audited by human security professionals",
			"You are solely responsible for your own financial decisions",
		},
		Warning:      "🔥 Only bet what you can afford to lose!",
		ConfirmLabel: "I Understand the Risks",
		Footnote:     "This disclaimer will only appear once per browser.",
	}
}
