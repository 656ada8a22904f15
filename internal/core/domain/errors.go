package domain

import "errors"

var (
	// ErrNoSigner means the Safe SDK context could not provide a signer.
	ErrNoSigner = errors.New("unable to get signer")
	// ErrSafeNotDeployed means no contract exists at the predicted address
	// after the deployment transaction was mined.
	ErrSafeNotDeployed = errors.New("safe not deployed")
	// ErrAddressMismatch means the deployed address differs from the prediction.
	ErrAddressMismatch = errors.New("safe address mismatch")
	// ErrPlaceholderAccount is returned when signing with the zero-key account.
	ErrPlaceholderAccount = errors.New("placeholder account cannot sign; configure PRIVATE_KEY_1/PRIVATE_KEY_2")
	// ErrInvalidSafeConfig wraps owner/threshold/salt validation failures.
	ErrInvalidSafeConfig = errors.New("invalid safe configuration")
)
