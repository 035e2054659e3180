package utils

// Set at build time with -ldflags "-X github.com/alpacahq/holidaystore/utils.Tag=..."
var (
	Tag        = "dev"
	GitHash    = "unknown"
	BuildStamp = "unknown"
)
