package ports

// ExportedDocument is a rendered report ready to be sent to a client.
type ExportedDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}
