package usecasecontract

// IAppLogger defines the leveled logging operations usecases depend on.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes application configuration to usecases.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetDefaultPageSize() int
	GetMaxPageSize() int
}

// IValidator defines entity-level input validation.
type IValidator interface {
	ValidatePlaylistName(name string) error
	ValidateCommentText(text string) error
	ValidateVideoTitle(title string) error
}
