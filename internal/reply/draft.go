package reply

// Draft is the last generated reply plus the most recent error, owned by
// whoever drives the generate and copy actions.
type Draft struct {
	Text  string
	Error string
}

// Apply folds a result into the draft. Failures keep the previous text.
func (d Draft) Apply(r Result) Draft {
	if r.OK() {
		return Draft{Text: r.Text}
	}
	return Draft{Text: d.Text, Error: r.Message}
}

// HasText reports whether there is anything to copy.
func (d Draft) HasText() bool { return d.Text != "" }
