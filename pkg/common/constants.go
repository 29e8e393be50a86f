package common

const (
	AuthorizationHeader = "Authorization"
	ClientInfoHeader    = "X-Client-Info"
	APIKeyHeader        = "apikey"
	BearerPrefix        = "Bearer "
)

// CORSAllowHeaders is the header list browsers may send to the
// classification endpoint.
const CORSAllowHeaders = "authorization, x-client-info, apikey, content-type"
