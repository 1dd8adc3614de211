// Package keyring keeps gist API tokens in the operating system keyring,
// one entry per context.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const ServiceName = "gistpad"

var (
	ErrTokenNotFound = errors.New("token not found in keyring")
	ErrTokenTooLarge = errors.New("token exceeds the keyring size limit")
)

// Error is a failed keyring operation on the token of a context. Err is one
// of the sentinels above or the error of the platform backend.
type Error struct {
	Op      string
	Context string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("keyring %s %q: %v", e.Op, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

//go:generate mockgen -destination=../mocks/keyring_provider_mock.go -package=mocks . Provider
type Provider interface {
	Get(context string) (string, error)
	Set(context string, token string) error
	Delete(context string) error
}

type KeyringProvider struct {
	service string
}

func NewKeyringProvider() *KeyringProvider {
	return &KeyringProvider{service: ServiceName}
}

func (k *KeyringProvider) Get(context string) (string, error) {
	token, err := keyring.Get(k.service, context)
	if err != nil {
		return "", wrap("get", context, err)
	}
	return token, nil
}

func (k *KeyringProvider) Set(context string, token string) error {
	if err := keyring.Set(k.service, context, token); err != nil {
		return wrap("set", context, err)
	}
	return nil
}

func (k *KeyringProvider) Delete(context string) error {
	if err := keyring.Delete(k.service, context); err != nil {
		return wrap("delete", context, err)
	}
	return nil
}

func wrap(op, context string, err error) error {
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		err = ErrTokenNotFound
	case errors.Is(err, keyring.ErrSetDataTooBig):
		err = ErrTokenTooLarge
	}
	return &Error{Op: op, Context: context, Err: err}
}

var _ Provider = (*KeyringProvider)(nil)
