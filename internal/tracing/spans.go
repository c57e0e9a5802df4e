package tracing

// Span names.
const (
	SpanAddLabel = "labels.add"
)

// Span attribute keys.
const (
	AttrRequestID      = "request.id"
	AttrUserType       = "label.usertype"
	AttrHTTPMethod     = "http.request.method"
	AttrHTTPURL        = "url.full"
	AttrHTTPStatusCode = "http.response.status_code"
	AttrSuccess        = "label.success"
)
