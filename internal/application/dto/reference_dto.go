package dto

// OptionResponse item de catálogo com id e nome (modelos, agentes).
type OptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ColorResponse item da paleta de cores do catálogo.
type ColorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	HexCode      string `json:"hex_code"`
	DisplayOrder int    `json:"display_order"`
}
