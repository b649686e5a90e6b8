package models

import (
	"slices"
	"time"
)

// DonationStatus is the processing state of a donation
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// Frequency is the billing cadence of a recurring donation
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyQuarterly || f == FrequencyYearly
}

// DonationPurposes are the funds offered to donors.
var DonationPurposes = []string{
	"Scholarship Fund",
	"Infrastructure Development",
	"Student Activities",
	"Faculty Development",
	"Research Programs",
	"General Fund",
}

// IsKnownPurpose reports whether p is one of DonationPurposes.
func IsKnownPurpose(p string) bool {
	return slices.Contains(DonationPurposes, p)
}

// Donation is a single gift, optionally recurring.
type Donation struct {
	ID          string         `json:"id"`
	DonorID     string         `json:"donorId"`
	Amount      Amount         `json:"amount"`
	Purpose     string         `json:"purpose"`
	IsRecurring bool           `json:"isRecurring"`
	Frequency   Frequency      `json:"frequency,omitempty"`
	IsAnonymous bool           `json:"isAnonymous"`
	DonorName   string         `json:"donorName,omitempty"`
	Message     string         `json:"message,omitempty"`
	Status      DonationStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// DisplayName hides the donor for anonymous gifts.
func (d *Donation) DisplayName() string {
	if d.IsAnonymous || d.DonorName == "" {
		return "Anonymous"
	}
	return d.DonorName
}

// Clone returns a copy.
func (d *Donation) Clone() *Donation {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// DonationDraft is the input for a new donation.
type DonationDraft struct {
	DonorID     string    `json:"donorId"`
	Amount      Amount    `json:"amount"`
	Purpose     string    `json:"purpose"`
	IsRecurring bool      `json:"isRecurring"`
	Frequency   Frequency `json:"frequency,omitempty"`
	IsAnonymous bool      `json:"isAnonymous"`
	DonorName   string    `json:"donorName,omitempty"`
	Message     string    `json:"message,omitempty"`
}
