// Package schema defines the data structures for hermes_urls' JSON output.
package schema

import (
	"time"

	"github.com/google/uuid"

	"hermes/internal/core"
	"hermes/internal/handler"
)

// Output represents the JSON document printed when a command runs with --json.
type Output struct {
	RunID        string `json:"run_id"`
	Command      string `json:"command"`
	Scheme       string `json:"scheme,omitempty"`
	TimestampUTC string `json:"timestamp_utc"`

	// register
	OpenCommand   string   `json:"open_command,omitempty"`
	LaunchCommand []string `json:"launch_command,omitempty"`

	// open
	URL         string        `json:"url,omitempty"`
	Payload     string        `json:"payload,omitempty"`
	DeliveredBy string        `json:"delivered_by,omitempty"`
	Attempts    []core.Result `json:"attempts,omitempty"`

	// list
	Registrations []handler.Registration `json:"registrations,omitempty"`
}

// NewOutput creates an Output for the named command with a fresh run id.
func NewOutput(command, scheme string, timestamp time.Time) *Output {
	return &Output{
		RunID:        uuid.NewString(),
		Command:      command,
		Scheme:       scheme,
		TimestampUTC: timestamp.UTC().Format(time.RFC3339),
	}
}

// SetDispatch records the outcome of an open command's delivery attempts.
func (o *Output) SetDispatch(url, payload, deliveredBy string, attempts []core.Result) {
	o.URL = url
	o.Payload = payload
	o.DeliveredBy = deliveredBy
	o.Attempts = attempts
}

// SetRegistration records what a register command wrote.
func (o *Output) SetRegistration(openCommand string, launchCommand []string) {
	o.OpenCommand = openCommand
	o.LaunchCommand = launchCommand
}
