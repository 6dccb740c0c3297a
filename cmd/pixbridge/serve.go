package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/pixcore/pixbridge/internal/bridge"
	"github.com/pixcore/pixbridge/internal/config"
	"github.com/pixcore/pixbridge/internal/credstore"
	"github.com/pixcore/pixbridge/internal/errors"
	"github.com/pixcore/pixbridge/internal/log"
)

const keyringRefPrefix = "keyring:"

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bridge operations to the sandboxed frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.transportSet = cmd.Flags().Changed("transport")
			opts.httpAddrSet = cmd.Flags().Changed("http-addr")
			opts.httpAuthTokenSet = cmd.Flags().Changed("http-auth-token")
			return runServe(opts)
		},
	}
	cmd.Flags().StringVar(&opts.transport, "transport", bridge.TransportStdio, "Bridge transport: stdio|streamable_http")
	cmd.Flags().StringVar(&opts.httpAddr, "http-addr", "127.0.0.1:8690", "Streamable HTTP listen address")
	cmd.Flags().StringVar(&opts.httpAuthToken, "http-auth-token", "", "Streamable HTTP auth token (required for streamable_http)")
	return cmd
}

// runServe runs the bridge server
func runServe(opts *serveOptions) error {
	cfg := GlobalConfig.Resolved.File
	logger := log.New(os.Stderr)

	store := credstore.New(credstore.Options{})
	server, err := bridge.CreateServer(version, &cfg, store)
	if err != nil {
		if be, ok := errors.As(err); ok {
			return be
		}
		return errors.Wrap(errors.CodeInternal, "failed to create bridge server", nil, err)
	}

	resolved, be := resolveServeOptions(opts, cfg, store)
	if be != nil {
		return be
	}

	switch resolved.transport {
	case bridge.TransportStdio:
		logger.Info("bridge started", "transport", resolved.transport)
		ctx := context.Background()
		return server.Run(ctx, &mcp.StdioTransport{})
	case bridge.TransportStreamableHTTP:
		handler, err := bridge.NewStreamableHTTPHandler(server, resolved.httpAuthToken)
		if err != nil {
			if be, ok := errors.As(err); ok {
				return be
			}
			return errors.Wrap(errors.CodeInternal, "failed to create streamable http handler", nil, err)
		}
		logger.Info("bridge started", "transport", resolved.transport, "addr", resolved.httpAddr)
		httpServer := &http.Server{
			Addr:    resolved.httpAddr,
			Handler: handler,
		}
		return httpServer.ListenAndServe()
	default:
		return errors.New(errors.CodeCfgInvalid, "unsupported bridge transport", map[string]any{"transport": resolved.transport})
	}
}

type serveOptions struct {
	transport        string
	transportSet     bool
	httpAddr         string
	httpAddrSet      bool
	httpAuthToken    string
	httpAuthTokenSet bool
}

type serveResolved struct {
	transport     string
	httpAddr      string
	httpAuthToken string
}

func resolveServeOptions(opts *serveOptions, cfg config.File, store *credstore.Store) (serveResolved, *errors.BridgeError) {
	if opts == nil {
		opts = &serveOptions{}
	}

	transport := firstNonEmpty(
		valueIfSet(opts.transportSet, opts.transport),
		os.Getenv("PIXBRIDGE_TRANSPORT"),
		cfg.Bridge.Transport,
	)
	if transport == "" {
		transport = bridge.TransportStdio
	}
	if transport != bridge.TransportStdio && transport != bridge.TransportStreamableHTTP {
		return serveResolved{}, errors.New(errors.CodeCfgInvalid, "invalid bridge transport", map[string]any{"transport": transport})
	}

	httpAddr := firstNonEmpty(
		valueIfSet(opts.httpAddrSet, opts.httpAddr),
		os.Getenv("PIXBRIDGE_HTTP_ADDR"),
		cfg.Bridge.HTTP.Addr,
	)
	if httpAddr == "" {
		httpAddr = "127.0.0.1:8690"
	}

	authToken := firstNonEmpty(
		valueIfSet(opts.httpAuthTokenSet, opts.httpAuthToken),
		os.Getenv("PIXBRIDGE_HTTP_AUTH_TOKEN"),
	)
	if authToken == "" && cfg.Bridge.HTTP.AuthToken != "" {
		resolvedToken, be := resolveAuthToken(cfg.Bridge.HTTP.AuthToken, cfg.Bridge.HTTP.AllowPlaintextToken, store)
		if be != nil {
			return serveResolved{}, be
		}
		authToken = resolvedToken
	}

	if transport == bridge.TransportStreamableHTTP && authToken == "" {
		return serveResolved{}, errors.New(errors.CodeCfgInvalid, "streamable http transport requires auth token", nil)
	}

	return serveResolved{
		transport:     transport,
		httpAddr:      httpAddr,
		httpAuthToken: authToken,
	}, nil
}

// resolveAuthToken 解析配置里的 token 值：keyring:provider 引用从
// 凭据存储读取；明文仅在显式允许时接受。
func resolveAuthToken(raw string, allowPlaintext bool, store *credstore.Store) (string, *errors.BridgeError) {
	if strings.HasPrefix(raw, keyringRefPrefix) {
		provider := strings.TrimPrefix(raw, keyringRefPrefix)
		val, found, be := store.Get(provider)
		if be != nil {
			return "", be
		}
		if !found {
			return "", errors.New(errors.CodeNotFound, "auth token secret not found", map[string]any{"provider": provider})
		}
		return val, nil
	}
	if allowPlaintext {
		return raw, nil
	}
	return "", errors.New(errors.CodeCfgInvalid, "plaintext auth token not allowed; use a keyring: reference or enable bridge.http.allow_plaintext_token", nil)
}

func valueIfSet(set bool, value string) string {
	if !set {
		return ""
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
