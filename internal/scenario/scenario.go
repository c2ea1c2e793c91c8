// Package scenario defines the fixed set of reply scenarios and the rule each
// one uses to render its instruction body.
package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the fixed reply scenarios.
type Kind int

const (
	OrderStatusInquiry Kind = iota
	OrderDelayed
	ReturnFittingIssue
	ExchangeRequest
	Other
)

// ErrUnknownKind is returned by ParseKind for input that names no scenario.
var ErrUnknownKind = errors.New("unknown scenario")

type meta struct {
	slug  string
	label string
}

var kinds = [...]meta{
	OrderStatusInquiry: {slug: "order_status", label: "Order Status Inquiry"},
	OrderDelayed:       {slug: "order_delayed", label: "Order Delayed"},
	ReturnFittingIssue: {slug: "return_fitting", label: "Return Request - Fitting Issue"},
	ExchangeRequest:    {slug: "exchange", label: "Exchange Request"},
	Other:              {slug: "other", label: "Other Inquiry"},
}

// All returns every scenario kind in display order.
func All() []Kind {
	return []Kind{OrderStatusInquiry, OrderDelayed, ReturnFittingIssue, ExchangeRequest, Other}
}

// Valid reports whether k is a member of the enumeration.
func (k Kind) Valid() bool {
	return k >= OrderStatusInquiry && k <= Other
}

// Slug is the stable identifier used in forms and JSON.
func (k Kind) Slug() string {
	if !k.Valid() {
		return kinds[Other].slug
	}
	return kinds[k].slug
}

// Label is the human-readable name shown in the UI and sent in prompts.
func (k Kind) Label() string {
	if !k.Valid() {
		return kinds[Other].label
	}
	return kinds[k].label
}

func (k Kind) String() string { return k.Label() }

// AcceptsTracking reports whether tracking id and courier URL mean anything
// for this scenario.
func (k Kind) AcceptsTracking() bool {
	return k == OrderStatusInquiry || k == OrderDelayed
}

// ParseKind resolves a slug or a label (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range All() {
		if strings.EqualFold(s, kinds[k].slug) || strings.EqualFold(s, kinds[k].label) {
			return k, nil
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText encodes the kind as its slug.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Slug()), nil
}

// UnmarshalText accepts a slug or label.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
