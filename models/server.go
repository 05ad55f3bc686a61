package models

// ServiceInfo is returned by the root endpoint of the development server.
type ServiceInfo struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Endpoints   map[string]string `json:"endpoints"`
}

// CleanupResult reports how many staged uploads were removed.
type CleanupResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Deleted int    `json:"-"`
}

// ConvertDocument is an upload accepted by the development server.
type ConvertDocument struct {
	// ID names the staged copy of the upload.
	ID string

	// FileName is the client-supplied file name.
	FileName string

	// Content is the uploaded PDF.
	Content []byte
}
