package cfg

type Cfg struct {
	// Server configuration
	Port string

	// Cache store configuration
	DBPath string

	// Generative backend configuration
	GoogleAPIKey   string
	Model          string
	MaxRetries     int
	InitialBackoff int

	// Pipeline configuration
	ProfilesDir string
	BatchPause  int
	RSSFallback bool

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
