package httpclient

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/bundlelint/bundlelint/pkg/shared/config"
)

// HclogAdapter adapts an hclog.Logger to the resty logger interface.
type HclogAdapter struct {
	logger hclog.Logger
}

// NewHclogAdapter creates an adapter forwarding resty log output to hclog.
func NewHclogAdapter(logger hclog.Logger) resty.Logger {
	return &HclogAdapter{logger: logger}
}

// Errorf logs a message at error level.
func (a *HclogAdapter) Errorf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

// Warnf logs a message at warning level.
func (a *HclogAdapter) Warnf(format string, v ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

// Debugf logs a message at debug level.
func (a *HclogAdapter) Debugf(format string, v ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}

// InitializeRestyClient initializes a resty client from the http_client
// configuration section, applying defaults for unset fields.
func InitializeRestyClient(logger hclog.Logger, cfg *config.Config) *resty.Client {
	client := resty.New()
	if logger != nil {
		client.SetLogger(NewHclogAdapter(logger))
	}

	restyConfig := applyHttpClientConfig(cfg)
	client.
		SetDebug(restyConfig.Debug).
		SetRetryCount(restyConfig.RetryCount).
		SetRetryWaitTime(restyConfig.RetryWaitTime).
		SetRetryMaxWaitTime(restyConfig.RetryMaxWaitTime).
		SetTimeout(restyConfig.Timeout).
		SetTLSClientConfig(restyConfig.TLSClientConfig)

	if restyConfig.Proxy != "" {
		client.SetProxy(restyConfig.Proxy)
	}

	return client
}

func applyHttpClientConfig(cfg *config.Config) config.RestyHttpClientConfig {
	resolved := config.DefaultRestyConfig()
	if cfg == nil {
		return resolved
	}

	httpConfig := &cfg.HttpClient
	resolved.Debug = config.BoolOrDefault(httpConfig.Debug, resolved.Debug)
	resolved.RetryCount = config.SetThen(httpConfig.RetryCount, resolved.RetryCount)
	resolved.RetryWaitTime = config.SetThen(httpConfig.RetryWaitTime, resolved.RetryWaitTime)
	resolved.RetryMaxWaitTime = config.SetThen(httpConfig.RetryMaxWaitTime, resolved.RetryMaxWaitTime)
	resolved.Timeout = config.SetThen(httpConfig.Timeout, resolved.Timeout)
	resolved.TLSClientConfig.InsecureSkipVerify = !config.BoolOrDefault(httpConfig.TlsClientConfig.Verify, true)

	if httpConfig.Proxy.Host != "" && httpConfig.Proxy.Port != "" {
		resolved.Proxy = fmt.Sprintf("%s:%s", httpConfig.Proxy.Host, httpConfig.Proxy.Port)
	}

	return resolved
}

// FetchRemoteConfig downloads and parses a configuration document from an
// http(s) URL, using default client settings since no configuration exists
// yet at that point.
func FetchRemoteConfig(logger hclog.Logger, url string) (*config.Config, error) {
	client := InitializeRestyClient(logger, nil)

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch remote config %q: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch remote config %q: status %s", url, resp.Status())
	}

	return config.ParseConfig(resp.Body())
}
