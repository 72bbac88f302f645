package models

import "time"

type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency,omitempty"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	PreviousClose float64   `json:"previousClose,omitempty"`
	FetchedAt     time.Time `json:"fetchedAt"`
}
