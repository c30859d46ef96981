package types

// Visitor is one entry of the static visitor directory loaded at startup.
// The directory is read-only after load and is independent of the record
// store; kiosk name lookup stays serviceable even when storage is down.
type Visitor struct {
	Name        string `json:"Name"`
	Designation string `json:"Designation,omitempty"`
	Email       string `json:"Email,omitempty"`
	Company     string `json:"Company,omitempty"`
}
