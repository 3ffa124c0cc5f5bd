package llm

// GatewayError is a custom error type for gateway failures
type GatewayError string

// Error implements the error interface
func (e GatewayError) Error() string {
	return string(e)
}

const (
	// ErrGenerationFailed means the model produced no usable text. Callers retry and then fall back.
	ErrGenerationFailed GatewayError = "generation failed"

	ErrEmptyResponse      GatewayError = "model returned empty content"
	ErrUnexpectedResponse GatewayError = "model response has an unexpected shape"
	ErrMissingAPIKey      GatewayError = "API key is required"
	ErrUnknownProvider    GatewayError = "unknown LLM provider"
	ErrNilConfig          GatewayError = "config cannot be nil"
	ErrNilProvider        GatewayError = "provider cannot be nil"
)
