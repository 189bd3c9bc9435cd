package iplister

import (
	"context"
	"errors"
	"net"
	"time"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
)

// Validator checks the decoded entries before they are handed to the
// caller. A failing validator is a parse failure for the whole list.
type Validator func([]string) error

type IPLister struct {
	reader   Reader
	decoder  Decoder
	timeout  time.Duration
	validate Validator
}

func New(reader Reader, decoder Decoder, opts ...iplisterOption) *IPLister {
	i := &IPLister{
		reader:  reader,
		decoder: decoder,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

func (i *IPLister) GetIPs() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), i.timeout)
	defer cancel()

	reader, err := i.reader.Data(ctx)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	ipList, err := i.decoder.Decode(reader)
	if err != nil {
		return nil, err
	}

	if i.validate != nil {
		if err := i.validate(ipList); err != nil {
			return nil, apperrors.NewParseError(err)
		}
	}

	return ipList, nil
}

func ValidateCIDRs(list []string) error {
	errs := []error{}

	for _, cidr := range list {
		_, _, err := net.ParseCIDR(cidr)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func ValidateHostPorts(list []string) error {
	errs := []error{}

	for _, entry := range list {
		host, _, err := net.SplitHostPort(entry)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if net.ParseIP(host) == nil {
			errs = append(errs, errors.New("invalid address: "+entry))
		}
	}

	return errors.Join(errs...)
}
