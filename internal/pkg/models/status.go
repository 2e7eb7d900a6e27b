package models

// StatusTone is the visual tone of a status badge
type StatusTone string

const (
	ToneSuccess StatusTone = "success"
	ToneInfo    StatusTone = "info"
	ToneWarning StatusTone = "warning"
	ToneDanger  StatusTone = "danger"
	ToneMuted   StatusTone = "muted"
)

// StatusMeta is the display metadata attached to a status value
type StatusMeta struct {
	Label string     `json:"label"`
	Tone  StatusTone `json:"tone"`
}
