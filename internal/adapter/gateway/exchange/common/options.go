package common

import (
	"os"
	"strings"
	"time"
)

type Options struct {
	Timeout   time.Duration // per-request
	UserAgent string
}

func DefaultOptionsFromEnv() Options {
	timeout := 15 * time.Second
	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); v != "" {
		if x, err := time.ParseDuration(v); err == nil {
			timeout = x
		}
	}
	ua := os.Getenv("HTTP_USER_AGENT")
	if ua == "" {
		ua = "refdatasvc (+https://github.com/berezovskyivalerii/refdatasvc)"
	}
	return Options{Timeout: timeout, UserAgent: ua}
}
