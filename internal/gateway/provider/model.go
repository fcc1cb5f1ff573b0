package provider

import "context"

// VisionRequest is one text-plus-image turn sent to a multimodal model.
// Model and Temperature override the client's configured defaults when
// set; the prompt profile uses this to retune the gateway without a
// restart.
type VisionRequest struct {
	Prompt       string
	ImageDataURL string
	Model        string
	Temperature  *float64
}

// VisionProvider is the outbound seam to a hosted vision-capable
// chat-completion endpoint. Implementations return the model's raw
// response text and never interpret it.
type VisionProvider interface {
	Analyze(ctx context.Context, req VisionRequest) (string, error)
}
