package entity

// Direction is the text direction a language renders in.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Language describes one member of the fixed language enumeration.
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`   // native display name
	Locale string `json:"locale"` // BCP 47 tag, e.g. "en-US"
}
