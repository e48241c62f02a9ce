// Package logging builds the zap.Logger shared by every package that
// takes a builder.WithLogger/analogous option, grounded on
// tareqmamari-cloud-logs-mcp/main.go's initLogger.
package logging
