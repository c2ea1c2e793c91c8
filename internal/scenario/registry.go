package scenario

import "fmt"

// ReturnAddress is where customers send items back for fitting-issue returns.
const ReturnAddress = "F-213/C, First Floor, Old M B Road, Nai Basti, Lado Sarai, New Delhi, Delhi 110030"

// Request is everything the agent typed into the form for one reply.
type Request struct {
	Kind         Kind
	CustomerName string
	OrderID      string
	TrackingID   string
	CourierURL   string
	Notes        string
}

// HasTracking reports whether both tracking fields are filled in.
func (r Request) HasTracking() bool {
	return r.TrackingID != "" && r.CourierURL != ""
}

// Rule renders the scenario-specific instruction body for a request.
type Rule func(Request) string

var rules = map[Kind]Rule{
	OrderStatusInquiry: renderOrderStatus,
	OrderDelayed:       renderOrderDelayed,
	ReturnFittingIssue: renderReturnFitting,
	ExchangeRequest:    renderExchange,
	Other:              renderOther,
}

// RuleFor returns the render rule for k. Kinds outside the enumeration get
// the Other rule, so the result is never nil.
func RuleFor(k Kind) Rule {
	if r, ok := rules[k]; ok {
		return r
	}
	return renderOther
}

// Render is shorthand for RuleFor(r.Kind)(r).
func Render(r Request) string {
	return RuleFor(r.Kind)(r)
}

func renderOrderStatus(r Request) string {
	s := fmt.Sprintf("The query is about an 'Order Status Inquiry'. Customer Name: %s, Order ID: %s.", r.CustomerName, r.OrderID)
	if r.HasTracking() {
		return s + fmt.Sprintf(" The order has been shipped with Tracking ID: %s and can be tracked at %s. Please provide a status update based on this.", r.TrackingID, r.CourierURL)
	}
	return s + " The order status is currently being checked. Please provide a general update and mention that tracking details will be shared if available or once shipped."
}

func renderOrderDelayed(r Request) string {
	s := fmt.Sprintf("The query is about an 'Order Delayed' scenario. Customer Name: %s, Order ID: %s. Please apologize and provide a believable, generic excuse for the delay.", r.CustomerName, r.OrderID)
	if r.HasTracking() {
		return s + fmt.Sprintf(" The order has been shipped with Tracking ID: %s and can be tracked at %s.", r.TrackingID, r.CourierURL)
	}
	return s + " The order has not been shipped yet."
}

func renderReturnFitting(r Request) string {
	return fmt.Sprintf("The query is a 'Return Request - Fitting Issue'. Customer Name: %s, Order ID: %s. Inform the customer they need to send the item back to %s, and explain what happens next (e.g., processing refund/store credit upon receipt).", r.CustomerName, r.OrderID, ReturnAddress)
}

func renderExchange(r Request) string {
	return fmt.Sprintf("The query is an 'Exchange Request'. Customer Name: %s, Order ID: %s. Explain that we will arrange a pickup and ask them for the new size or item they require.", r.CustomerName, r.OrderID)
}

func renderOther(r Request) string {
	return fmt.Sprintf("Generate a generic customer service reply for: Customer Name: %s, Order ID: %s regarding: %s.", r.CustomerName, r.OrderID, r.Kind.Label())
}
