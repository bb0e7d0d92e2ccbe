package openapifx

type Config struct {
	Enabled bool
	// PublicHost and PublicPath override the host and base path baked into
	// the generated spec, for deployments behind a proxy
	PublicHost string
	PublicPath string
}
