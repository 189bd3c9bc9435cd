package proxycheck

import "time"

type checkerOption func(*Checker)

func WithCanaryURL(canaryURL string) checkerOption {
	return func(c *Checker) {
		c.canaryURL = canaryURL
	}
}

func WithTimeout(timeout time.Duration) checkerOption {
	return func(c *Checker) {
		c.timeout = timeout
	}
}
