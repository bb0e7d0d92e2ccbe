package sessions

type Config struct {
	// MaxHistory caps the transcript kept per session; 0 keeps everything
	MaxHistory int
	// Author is recorded on simulated commits
	Author string
}
