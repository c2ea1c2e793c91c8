// Package prompt turns a reply request into the system and user instructions
// sent to the completion service.
package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/joestump/replydraft/internal/scenario"
)

// SystemInstruction sets the assistant persona and the mandatory sign-off.
const SystemInstruction = "You are a helpful customer service assistant for Toffle. Your tone should be professional, empathetic, and polite. Use 'we' instead of 'I' when responding. Generate replies based on the user's input and keep them concise and to the point. Include any additional notes or context provided. End the reply with:\n\nWarm Regards,\nTeam Toffle"

//go:embed user.tmpl
var defaultUserTemplate string

// Composed is the instruction pair for one completion call.
type Composed struct {
	System string
	User   string
}

// ValidationError reports a required request field left empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Validate checks the fields every scenario needs.
func Validate(req scenario.Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return &ValidationError{Field: "customer name"}
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return &ValidationError{Field: "order id"}
	}
	return nil
}

// templateData holds the variables available in the user template.
type templateData struct {
	CustomerName string
	OrderID      string
	Label        string
	Details      string
	Notes        string
}

// Composer renders user instructions from a parsed template.
type Composer struct {
	tmpl *template.Template
}

// NewComposer parses customTemplate, or the embedded default when it is empty.
func NewComposer(customTemplate string) (*Composer, error) {
	src := defaultUserTemplate
	if customTemplate != "" {
		src = customTemplate
	}
	tmpl, err := template.New("user").Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	return &Composer{tmpl: tmpl}, nil
}

var defaultComposer = func() *Composer {
	c, err := NewComposer("")
	if err != nil {
		panic(err)
	}
	return c
}()

// Compose builds the prompt with the embedded template.
func Compose(req scenario.Request) (Composed, error) {
	return defaultComposer.Compose(req)
}

// Compose validates req and renders both instructions. The output depends
// only on req.
func (c *Composer) Compose(req scenario.Request) (Composed, error) {
	if err := Validate(req); err != nil {
		return Composed{}, err
	}

	data := templateData{
		CustomerName: req.CustomerName,
		OrderID:      req.OrderID,
		Label:        req.Kind.Label(),
		Details:      scenario.Render(req),
		Notes:        req.Notes,
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return Composed{}, fmt.Errorf("render prompt: %w", err)
	}

	return Composed{
		System: SystemInstruction,
		User:   strings.TrimRight(buf.String(), "\n"),
	}, nil
}
