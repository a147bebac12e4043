package response

// Envelope is the uniform success wrapper: {success: true, data: ...}.
// Failures use pkg.HTTPError, keeping the two shapes symmetrical.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
