package dto

import "github.com/jhoicas/vendas-dashboard/internal/application/script"

// ScriptResponse texto estructurado en pasos. Si Structured es false, el texto va completo
// en Unlabeled.
type ScriptResponse struct {
	Structured bool          `json:"structured"`
	Steps      []script.Step `json:"steps"`
	Unlabeled  string        `json:"unlabeled,omitempty"`
}
