package domain

import "fmt"

// Status is the canonical project lifecycle state:
//
//	draft → pending_client → approved | rejected → in_assembly → completed
//
// A rejected project re-enters at draft or pending_client when the
// designer resubmits.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingClient Status = "pending_client"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusInAssembly    Status = "in_assembly"
	StatusCompleted     Status = "completed"
)

// legacyStatuses maps the older, coarser vocabulary still used by some
// clients onto the canonical states.
var legacyStatuses = map[string]Status{
	"pending":     StatusPendingClient,
	"in_progress": StatusInAssembly,
	"validation":  StatusPendingClient,
	"cancelled":   StatusRejected,
}

// ParseStatus normalizes a status label, accepting both the canonical
// and the legacy vocabulary.
func ParseStatus(label string) (Status, error) {
	switch s := Status(label); s {
	case StatusDraft, StatusPendingClient, StatusApproved, StatusRejected,
		StatusInAssembly, StatusCompleted:
		return s, nil
	}
	if s, ok := legacyStatuses[label]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, label)
}

// DisplayLabel returns the UI label for a status.
func (s Status) DisplayLabel() string {
	switch s {
	case StatusDraft:
		return "Borrador"
	case StatusPendingClient:
		return "Pendiente del cliente"
	case StatusApproved:
		return "Aprobado"
	case StatusRejected:
		return "Rechazado"
	case StatusInAssembly:
		return "En ensamblaje"
	case StatusCompleted:
		return "Completado"
	}
	return string(s)
}
