package types

// AppName identifies the service in logs and health responses
const AppName = "herald"

// Version is the application version, overwritten at build time via ldflags
var Version = "0.1.0"
