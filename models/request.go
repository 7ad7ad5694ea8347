package models

// RequestForm holds the user-entered request parameters. Quantity and
// budget are free text on purpose; the reseller reading the message
// interprets them.
type RequestForm struct {
	Quantity string `json:"quantity"`
	Section  string `json:"section"`
	Budget   string `json:"budget"`
	Notes    string `json:"notes"`
}
