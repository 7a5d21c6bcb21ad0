package entity

// Document texto plano de una factura junto con su identificador (nombre del archivo
// sin extensión o el id enviado por el cliente).
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
