package entity

// Currency describes one member of the fixed currency enumeration.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
