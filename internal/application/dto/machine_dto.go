package dto

// CreateMachineRequest body para POST /api/machines.
type CreateMachineRequest struct {
	Name   string `json:"name"`
	Model  string `json:"model,omitempty"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateMachineRequest body para PUT /api/machines/:id (campos opcionales).
type UpdateMachineRequest struct {
	Name   *string `json:"name,omitempty"`
	Model  *string `json:"model,omitempty"`
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// MachineResponse máquina en respuestas.
type MachineResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Model  string `json:"model,omitempty"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// CreateDieCutterRequest body para POST /api/diecutters.
type CreateDieCutterRequest struct {
	Name   string `json:"name"`
	Format string `json:"format,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateDieCutterRequest body para PUT /api/diecutters/:id (campos opcionales).
type UpdateDieCutterRequest struct {
	Name   *string `json:"name,omitempty"`
	Format *string `json:"format,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// DieCutterResponse troquel en respuestas.
type DieCutterResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Format string `json:"format,omitempty"`
	Notes  string `json:"notes,omitempty"`
}
