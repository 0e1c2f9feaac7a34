package sheets

// valueRange mirrors the values-API wire format. Every cell is written with
// valueInputOption=RAW, so cells round-trip as plain strings.
type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
