package config

import "errors"

var ErrVaultNotSet = errors.New("vault directory is not configured")

type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string {
	return e.msg
}

func (e *ConfigInitError) Unwrap() error {
	return ErrVaultNotSet
}
