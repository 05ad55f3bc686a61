package tui

import "github.com/MKhiriev/kessan-converter/models"

type submitDoneMsg struct {
	outcome models.Outcome
	err     error
}

type healthDoneMsg struct {
	status models.HealthStatus
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
