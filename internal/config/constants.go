// internal/config/constants.go
package config

const (
	AppName    = "reel-lingo-backend"
	AppVersion = "0.3.0"
)

const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultFeedbackLimit        = 100
	DefaultJWTExpirationMinutes = 60 * 24
)
