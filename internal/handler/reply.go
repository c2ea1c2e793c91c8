package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/joestump/replydraft/internal/prompt"
	"github.com/joestump/replydraft/internal/reply"
	"github.com/joestump/replydraft/internal/scenario"
)

// ScenarioOption is one entry in the scenario select.
type ScenarioOption struct {
	Slug     string
	Label    string
	Selected bool
}

// ReplyForm holds form input values so they survive a re-render.
type ReplyForm struct {
	Scenario     string
	CustomerName string
	OrderID      string
	TrackingID   string
	CourierURL   string
	Notes        string
}

// FieldsPartial is the data for the scenario-specific part of the form.
type FieldsPartial struct {
	Form            ReplyForm
	AcceptsTracking bool
	ShowReturn      bool
	ReturnAddress   string
}

// ReplyPage is the template data for the reply generator page and its
// result fragment.
type ReplyPage struct {
	BasePage
	Scenarios   []ScenarioOption
	Form        ReplyForm
	Fields      FieldsPartial
	FieldError  string
	Draft       reply.Draft
	ConfigError string

	// FieldErrorOOB marks the field error for an out-of-band swap, so an HTMX
	// response updates it next to the inputs.
	FieldErrorOOB bool
}

// ReplyHandler serves the reply form and generation endpoint.
type ReplyHandler struct {
	gen *reply.Generator
}

// NewReplyHandler creates a new ReplyHandler.
func NewReplyHandler(gen *reply.Generator) *ReplyHandler {
	return &ReplyHandler{gen: gen}
}

func (h *ReplyHandler) page(r *http.Request, form ReplyForm, draft reply.Draft) ReplyPage {
	kind, _ := scenario.ParseKind(form.Scenario)
	form.Scenario = kind.Slug()

	opts := make([]ScenarioOption, 0, len(scenario.All()))
	for _, k := range scenario.All() {
		opts = append(opts, ScenarioOption{Slug: k.Slug(), Label: k.Label(), Selected: k == kind})
	}

	data := ReplyPage{
		BasePage:  newBasePage(r),
		Scenarios: opts,
		Form:      form,
		Fields:    fieldsFor(kind, form),
		Draft:     draft,
	}
	if err := h.gen.Ready(); err != nil {
		data.ConfigError = err.Error()
	}
	return data
}

func fieldsFor(kind scenario.Kind, form ReplyForm) FieldsPartial {
	return FieldsPartial{
		Form:            form,
		AcceptsTracking: kind.AcceptsTracking(),
		ShowReturn:      kind == scenario.ReturnFittingIssue,
		ReturnAddress:   scenario.ReturnAddress,
	}
}

// Index renders GET /.
func (h *ReplyHandler) Index(w http.ResponseWriter, r *http.Request) {
	form := ReplyForm{Scenario: r.URL.Query().Get("scenario")}
	render(w, "index.html", h.page(r, form, reply.Draft{}))
}

// Fields renders GET /fields, the HTMX swap for the scenario-dependent inputs.
func (h *ReplyHandler) Fields(w http.ResponseWriter, r *http.Request) {
	form := ReplyForm{
		Scenario:   r.URL.Query().Get("scenario"),
		TrackingID: r.URL.Query().Get("tracking_id"),
		CourierURL: r.URL.Query().Get("courier_url"),
		Notes:      r.URL.Query().Get("notes"),
	}
	kind, _ := scenario.ParseKind(form.Scenario)
	form.Scenario = kind.Slug()
	renderFragment(w, fieldsFor(kind, form), "scenario_fields")
}

// Generate handles POST /generate. The previous reply text travels in the
// draft_text hidden field, so a failed attempt re-renders it unchanged.
func (h *ReplyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := ReplyForm{
		Scenario:     r.FormValue("scenario"),
		CustomerName: strings.TrimSpace(r.FormValue("customer_name")),
		OrderID:      strings.TrimSpace(r.FormValue("order_id")),
		TrackingID:   strings.TrimSpace(r.FormValue("tracking_id")),
		CourierURL:   strings.TrimSpace(r.FormValue("courier_url")),
		Notes:        strings.TrimSpace(r.FormValue("notes")),
	}
	draft := reply.Draft{Text: r.FormValue("draft_text")}

	kind, err := scenario.ParseKind(form.Scenario)
	if err != nil {
		draft.Error = "Please choose a reply type."
		h.respond(w, r, h.page(r, form, draft))
		return
	}

	req := scenario.Request{
		Kind:         kind,
		CustomerName: form.CustomerName,
		OrderID:      form.OrderID,
		Notes:        form.Notes,
	}
	if kind.AcceptsTracking() {
		req.TrackingID = form.TrackingID
		req.CourierURL = form.CourierURL
	}

	res := h.gen.Generate(r.Context(), req)
	data := h.page(r, form, draft.Apply(res))
	if res.Kind == reply.KindValidation {
		// Shown inline next to the inputs, not in the result panel.
		data.Draft.Error = ""
		data.FieldError = "Please enter both Customer Name and Order ID."
		var verr *prompt.ValidationError
		if errors.As(res.Err(), &verr) {
			data.FieldError = "Please enter the " + verr.Field + "."
		}
	}
	h.respond(w, r, data)
}

func (h *ReplyHandler) respond(w http.ResponseWriter, r *http.Request, data ReplyPage) {
	if isHTMX(r) {
		data.FieldErrorOOB = true
		renderFragment(w, data, "reply_panel", "field_error")
		return
	}
	render(w, "index.html", data)
}
