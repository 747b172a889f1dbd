package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config         *Config
	projectFile    string
	reprojucerFile string
	watch          bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithFiles sets the project descriptor and build-macro library paths.
func WithFiles(projectFile, reprojucerFile string) Option {
	return func(a *application) {
		a.projectFile = projectFile
		a.reprojucerFile = reprojucerFile
	}
}

// WithWatch enables regeneration on descriptor changes.
func WithWatch(watch bool) Option {
	return func(a *application) {
		a.watch = watch
	}
}
