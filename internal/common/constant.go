package common

// AccessTokenHeaderName is the HTTP header that carries the access token
// on authenticated API requests.
const AccessTokenHeaderName = "Authorization"
