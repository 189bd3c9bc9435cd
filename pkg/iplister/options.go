package iplister

import "time"

type iplisterOption func(*IPLister)

func WithTimeout(timeout time.Duration) iplisterOption {
	return func(i *IPLister) {
		i.timeout = timeout
	}
}

func WithValidator(validate Validator) iplisterOption {
	return func(i *IPLister) {
		i.validate = validate
	}
}
