// README: Structured logger initialization.
package infra

import "go.uber.org/zap"

// NewLogger builds a production zap logger; set debug for development output.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
