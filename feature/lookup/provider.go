package lookup

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bom-checker/feature/distributor"

	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

// Provider looks up distributor records.
type Provider interface {
	// Lookup returns the record for a part number, or nil when it does not exist.
	Lookup(ctx context.Context, partNumber string) (*distributor.Record, error)
}

// Provider kinds.
const (
	ProviderExec = "exec"
	ProviderHTTP = "http"
	ProviderFile = "file"
)

// Config holds configuration for the part lookup collaborator.
type Config struct {
	// Provider selects the implementation (exec, http, file).
	Provider string `mapstructure:"provider" default:"exec"`
	// Command is the helper command for the exec provider. {pn} is replaced by the part number.
	// It is split into arguments with shell quoting rules, so a path with spaces
	// must be quoted: "/opt/My Tools/dkapia.py" PART_SEARCH -P {pn}.
	Command string `mapstructure:"command" default:"dkapia.py PART_SEARCH -P {pn} -rmMl -rmPp -rmPd"`
	// BaseURL is the part details endpoint for the http provider.
	BaseURL string `mapstructure:"base_url" default:""`
	// ClientID is sent as X-DIGIKEY-Client-Id by the http provider.
	ClientID string `mapstructure:"client_id" default:""`
	// Token is sent as a bearer token by the http provider.
	Token string `mapstructure:"token" default:""`
	// Dir holds {part number}.json files for the file provider.
	Dir string `mapstructure:"dir" default:"parts"`
	// TimeoutSeconds bounds a single lookup. Zero waits indefinitely.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"0"`
}

// NewProvider builds the provider selected by the configuration.
func NewProvider(cfg Config, logger *zap.Logger) (Provider, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch strings.ToLower(cfg.Provider) {
	case ProviderExec, "":
		args, err := shellwords.Parse(cfg.Command)
		if err != nil {
			return nil, fmt.Errorf("invalid lookup command: %w", err)
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("lookup command is empty")
		}
		return &ExecProvider{Args: args, Timeout: timeout, Logger: logger}, nil
	case ProviderHTTP:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("lookup base_url is required for the http provider")
		}
		return &HTTPProvider{
			BaseURL:  strings.TrimRight(cfg.BaseURL, "/"),
			ClientID: cfg.ClientID,
			Token:    cfg.Token,
			Client:   &http.Client{Timeout: timeout},
		}, nil
	case ProviderFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("lookup dir is required for the file provider")
		}
		return &FileProvider{Dir: cfg.Dir}, nil
	default:
		return nil, fmt.Errorf("unknown lookup provider %q", cfg.Provider)
	}
}
