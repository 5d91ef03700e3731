package repository

import "time"

// OrderListFilter filters the order list.
type OrderListFilter struct {
	Page              int
	PageSize          int
	PaymentStatus     string
	FulfillmentStatus string
	OrderNo           string
	CustomerEmail     string
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
}

// SnackListFilter filters the catalog list.
type SnackListFilter struct {
	Page        int
	PageSize    int
	Category    string
	Search      string
	OnlyEnabled bool
}

// EnquiryListFilter filters enquiry-style lists (enquiries, catering, bulk).
type EnquiryListFilter struct {
	Page     int
	PageSize int
	Status   string
}

// MediaListFilter filters the media list.
type MediaListFilter struct {
	Page       int
	PageSize   int
	Kind       string
	OnlyActive bool
}
