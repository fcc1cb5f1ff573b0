package types

// AnalysisRequest carries one uploaded chart image plus the caller's
// strategy rules. It lives for the duration of a single request and is
// never persisted.
type AnalysisRequest struct {
	Image       []byte
	ContentType string
	Strategy    string
}

// AnalysisResult wraps the model's raw response text. The text is opaque
// to the server: parsing the labeled fields (or the no-setup sentence)
// is the caller's job. ID is a correlation token the caller may echo
// back when journaling the setup this analysis produced.
type AnalysisResult struct {
	ID   string
	Text string
}
